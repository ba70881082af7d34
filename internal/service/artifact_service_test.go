package service

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"strings"
	"testing"

	"pathfinder_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateFile(t *testing.T) {
	env := seededEnv(t)

	t.Run("every simulation has a file", func(t *testing.T) {
		sims, err := env.catalog.ListSimulations()
		require.NoError(t, err)
		require.Len(t, sims, 16)

		for _, sim := range sims {
			asset, err := env.artifact.GenerateFile(sim.ID)
			require.NoError(t, err, sim.ID)
			assert.NotEmpty(t, asset.Filename, sim.ID)
			assert.NotEmpty(t, asset.MimeType, sim.ID)

			_, err = base64.StdEncoding.DecodeString(asset.Content)
			assert.NoError(t, err, sim.ID)
		}
	})

	t.Run("unknown simulation", func(t *testing.T) {
		_, err := env.artifact.GenerateFile("no-such-sim")
		assert.ErrorIs(t, err, util.ErrSimulationNotFound)
	})

	t.Run("text document content", func(t *testing.T) {
		asset, err := env.artifact.GenerateFile("cyber-password-1")
		require.NoError(t, err)

		assert.Equal(t, "password_hashes.txt", asset.Filename)
		assert.Equal(t, "text/plain", asset.MimeType)

		raw, err := base64.StdEncoding.DecodeString(asset.Content)
		require.NoError(t, err)
		content := string(raw)
		assert.Contains(t, content, "482c811da5d5b4bc6d497ffa98491e38")
		assert.Contains(t, content, "letmein")
	})

	t.Run("code file keeps the planted bugs", func(t *testing.T) {
		asset, err := env.artifact.GenerateFile("se-debugging-1")
		require.NoError(t, err)

		assert.Equal(t, "shopping_cart_debug.py", asset.Filename)
		raw, err := base64.StdEncoding.DecodeString(asset.Content)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "BUG 1: Assignment instead of comparison")
	})
}

func TestCustomerChurnWorkbookSignals(t *testing.T) {
	asset, err := customerChurnWorkbook()
	require.NoError(t, err)
	assert.Equal(t, "customer_churn_dataset.xlsx", asset.Filename)
	assert.Equal(t, xlsxMimeType, asset.MimeType)

	raw, err := base64.StdEncoding.DecodeString(asset.Content)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customer_Churn_Data")
	require.NoError(t, err)
	require.Len(t, rows, 1001)

	header := rows[0]
	assert.Equal(t, "Customer_ID", header[0])
	assert.Equal(t, "Churn", header[9])

	// The planted correlation: month-to-month contracts always churn.
	for _, row := range rows[1:] {
		if row[4] == "Month-to-month" {
			assert.Equal(t, "Yes", row[9])
		}
	}
}

func TestEmailDatasetCSV(t *testing.T) {
	asset, err := emailDatasetCSV()
	require.NoError(t, err)
	assert.Equal(t, "text/csv", asset.MimeType)

	raw, err := base64.StdEncoding.DecodeString(asset.Content)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1001)
	assert.Equal(t, []string{"email_text", "label"}, records[0])

	spam := 0
	for _, rec := range records[1:] {
		require.Len(t, rec, 2)
		if rec[1] == "spam" {
			spam++
		}
	}
	assert.Equal(t, 500, spam)
}

func TestProductWorkbooks(t *testing.T) {
	for _, tc := range []struct {
		name     string
		generate func() (FileAsset, error)
		sheet    string
		rows     int
	}{
		{"roadmap", productRoadmapWorkbook, "Product_Features", 11},
		{"metrics", productMetricsWorkbook, "Product_Metrics", 11},
	} {
		t.Run(tc.name, func(t *testing.T) {
			asset, err := tc.generate()
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(asset.Content)
			require.NoError(t, err)

			f, err := excelize.OpenReader(bytes.NewReader(raw))
			require.NoError(t, err)
			defer f.Close()

			rows, err := f.GetRows(tc.sheet)
			require.NoError(t, err)
			assert.Len(t, rows, tc.rows)
		})
	}
}
