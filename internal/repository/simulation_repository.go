package repository

import (
	"pathfinder_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SimulationRepository struct {
	DB *gorm.DB
}

func NewSimulationRepository(db *gorm.DB) *SimulationRepository {
	return &SimulationRepository{DB: db}
}

func (r *SimulationRepository) withQuestions() *gorm.DB {
	return r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *SimulationRepository) FindAll() ([]model.Simulation, error) {
	var sims []model.Simulation
	err := r.withQuestions().Order("id").Find(&sims).Error
	return sims, err
}

func (r *SimulationRepository) FindByFieldID(fieldID string) ([]model.Simulation, error) {
	var sims []model.Simulation
	err := r.withQuestions().Where("field_id = ?", fieldID).Order("id").Find(&sims).Error
	return sims, err
}

func (r *SimulationRepository) FindByID(id string) (*model.Simulation, error) {
	var sim model.Simulation
	err := r.withQuestions().First(&sim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sim, nil
}

func (r *SimulationRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Simulation{}).Count(&count).Error
	return count, err
}

// Upsert replaces the full simulation record by id, questions included.
// Replays are safe: the row is overwritten and the question set rebuilt.
func (r *SimulationRepository) Upsert(sim *model.Simulation) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions := sim.Questions
		sim.Questions = nil
		defer func() { sim.Questions = questions }()

		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(sim).Error; err != nil {
			return err
		}

		if err := tx.Where("simulation_id = ?", sim.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].ID = 0
			questions[i].SimulationID = sim.ID
			questions[i].Position = i
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

// MergeQuestions upserts a question set into an existing simulation without
// touching its other fields. Returns false when the simulation is unknown.
func (r *SimulationRepository) MergeQuestions(simulationID string, questions []model.Question) (bool, error) {
	var count int64
	if err := r.DB.Model(&model.Simulation{}).Where("id = ?", simulationID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			q := questions[i]
			q.ID = 0
			q.SimulationID = simulationID
			q.Position = i
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "simulation_id"}, {Name: "question_id"}},
				UpdateAll: true,
			}).Create(&q)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
