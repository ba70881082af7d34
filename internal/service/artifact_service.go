package service

import (
	"encoding/base64"
	"errors"

	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"

	"gorm.io/gorm"
)

// FileAsset is a downloadable exercise file. Content is base64 so binary
// spreadsheets and plain text travel through the same JSON envelope.
type FileAsset struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mime_type"`
}

type ArtifactService struct {
	simRepo    *repository.SimulationRepository
	generators map[string]func() (FileAsset, error)
}

func NewArtifactService(simRepo *repository.SimulationRepository) *ArtifactService {
	return &ArtifactService{
		simRepo: simRepo,
		generators: map[string]func() (FileAsset, error){
			// Software Engineering
			"se-debugging-1":   shoppingCartCode,
			"se-development-1": apiRequirementsDoc,
			"se-testing-1":     calculatorClassCode,

			// Cybersecurity
			"cyber-password-1":    passwordHashesDoc,
			"cyber-penetration-1": networkConfigDoc,

			// Data Science
			"ds-analysis-1": customerChurnWorkbook,
			"ds-modeling-1": emailDatasetCSV,

			// DevOps
			"devops-deployment-1": webAppCode,
			"devops-monitoring-1": monitoringRequirementsDoc,

			// Cloud Computing
			"cloud-aws-1":      awsRequirementsDoc,
			"cloud-security-1": securityRequirementsDoc,

			// Mobile Development
			"mobile-native-1": iosAppCode,
			"mobile-cross-1":  reactNativeCode,

			// Product Management
			"pm-strategy-1":      productRoadmapWorkbook,
			"pm-analytics-1":     productMetricsWorkbook,
			"pm-user-research-1": userInterviewsDoc,
		},
	}
}

// GenerateFile builds the exercise file for a simulation on demand. Files
// are deterministic in shape but datasets are regenerated per request.
func (s *ArtifactService) GenerateFile(simulationID string) (*FileAsset, error) {
	if _, err := s.simRepo.FindByID(simulationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSimulationNotFound
		}
		return nil, err
	}

	generator, ok := s.generators[simulationID]
	if !ok {
		return nil, util.ErrArtifactNotFound
	}

	asset, err := generator()
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func textAsset(filename, mimeType, content string) (FileAsset, error) {
	return FileAsset{
		Filename: filename,
		Content:  base64.StdEncoding.EncodeToString([]byte(content)),
		MimeType: mimeType,
	}, nil
}
