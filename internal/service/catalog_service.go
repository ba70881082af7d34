package service

import (
	"errors"

	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CatalogService struct {
	fieldRepo *repository.FieldRepository
	simRepo   *repository.SimulationRepository
}

func NewCatalogService(fieldRepo *repository.FieldRepository, simRepo *repository.SimulationRepository) *CatalogService {
	return &CatalogService{fieldRepo: fieldRepo, simRepo: simRepo}
}

func (s *CatalogService) ListFields() ([]model.Field, error) {
	return s.fieldRepo.FindAll()
}

func (s *CatalogService) ListSimulations() ([]model.SimulationPublic, error) {
	sims, err := s.simRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return publicSimulations(sims), nil
}

func (s *CatalogService) ListSimulationsByField(fieldID string) ([]model.SimulationPublic, error) {
	sims, err := s.simRepo.FindByFieldID(fieldID)
	if err != nil {
		return nil, err
	}
	return publicSimulations(sims), nil
}

func (s *CatalogService) GetSimulation(id string) (*model.SimulationPublic, error) {
	sim, err := s.simRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSimulationNotFound
		}
		return nil, err
	}
	pub := sim.Public()
	return &pub, nil
}

func publicSimulations(sims []model.Simulation) []model.SimulationPublic {
	out := make([]model.SimulationPublic, 0, len(sims))
	for i := range sims {
		out = append(out, sims[i].Public())
	}
	return out
}

// SeedFields inserts the built-in career fields, skipping any that exist.
// Returns the size of the built-in set.
func (s *CatalogService) SeedFields() (int, error) {
	fields := seedFields()
	if _, err := s.fieldRepo.InsertIfAbsent(fields); err != nil {
		return 0, err
	}
	return len(fields), nil
}

// SeedSimulations overwrites the built-in catalog so reseeding picks up
// content changes. Returns the size of the built-in set.
func (s *CatalogService) SeedSimulations() (int, error) {
	sims := seedSimulations()
	for i := range sims {
		if err := s.simRepo.Upsert(&sims[i]); err != nil {
			return 0, err
		}
	}
	return len(sims), nil
}

// MergeQuestions applies the refreshed question banks to simulations that
// already exist; unknown ids are skipped. Returns how many simulations were
// updated.
func (s *CatalogService) MergeQuestions() (int, error) {
	updated := 0
	for simID, questions := range mergeQuestionSets() {
		ok, err := s.simRepo.MergeQuestions(simID, questions)
		if err != nil {
			return updated, err
		}
		if ok {
			updated++
		}
	}
	return updated, nil
}

// EnsureSeeded populates an empty database on startup so a fresh deployment
// serves the catalog without a manual admin call.
func (s *CatalogService) EnsureSeeded() error {
	count, err := s.fieldRepo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		n, err := s.SeedFields()
		if err != nil {
			return err
		}
		logger.Log.Info("Seeded career fields", zap.Int("count", n))
	}

	count, err = s.simRepo.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		n, err := s.SeedSimulations()
		if err != nil {
			return err
		}
		logger.Log.Info("Seeded simulations", zap.Int("count", n))
	}
	return nil
}
