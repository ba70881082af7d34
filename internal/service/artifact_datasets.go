package service

import (
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// workbookAsset builds a single-sheet xlsx from a header row and data rows.
func workbookAsset(filename, sheet string, header []interface{}, rows [][]interface{}) (FileAsset, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return FileAsset{}, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return FileAsset{}, err
	}
	for i := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return FileAsset{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return FileAsset{}, err
	}
	return FileAsset{
		Filename: filename,
		Content:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType: xlsxMimeType,
	}, nil
}

// customerChurnWorkbook generates 1000 synthetic customers. Churn is forced
// for high charges, month-to-month contracts and missing online security so
// the correlations the exercise asks about are actually present.
func customerChurnWorkbook() (FileAsset, error) {
	header := []interface{}{
		"Customer_ID", "Age", "Monthly_Charges", "Tenure_Months", "Contract_Type",
		"Internet_Service", "Online_Security", "Tech_Support", "Payment_Method", "Churn",
	}

	contracts := []string{"Month-to-month", "One year", "Two year"}
	internet := []string{"DSL", "Fiber optic", "No"}
	addons := []string{"Yes", "No", "No internet service"}
	payments := []string{"Electronic check", "Mailed check", "Bank transfer", "Credit card"}
	churns := []string{"Yes", "No"}

	rows := make([][]interface{}, 0, 1000)
	for i := 1; i <= 1000; i++ {
		charges := 20 + rand.Float64()*100
		charges = float64(int(charges*100)) / 100
		contract := contracts[rand.Intn(len(contracts))]
		security := addons[rand.Intn(len(addons))]
		churn := churns[rand.Intn(len(churns))]
		if charges > 80 || contract == "Month-to-month" || security == "No" {
			churn = "Yes"
		}
		rows = append(rows, []interface{}{
			fmt.Sprintf("CUST_%04d", i),
			18 + rand.Intn(63),
			charges,
			1 + rand.Intn(72),
			contract,
			internet[rand.Intn(len(internet))],
			security,
			addons[rand.Intn(len(addons))],
			payments[rand.Intn(len(payments))],
			churn,
		})
	}

	return workbookAsset("customer_churn_dataset.xlsx", "Customer_Churn_Data", header, rows)
}

// emailDatasetCSV repeats a small labeled corpus into a 1000-row training
// set for the spam classification exercise.
func emailDatasetCSV() (FileAsset, error) {
	samples := []struct {
		text  string
		label string
	}{
		{"Get rich quick! Make $1000 per day working from home!", "spam"},
		{"Your account has been suspended. Click here to verify your identity.", "spam"},
		{"Meeting reminder: Project review at 3 PM today", "ham"},
		{"Congratulations! You've won $50,000 in our lottery!", "spam"},
		{"Please review the attached quarterly report", "ham"},
		{"URGENT: Your bank account will be closed in 24 hours", "spam"},
		{"Team lunch tomorrow at 12 PM in the cafeteria", "ham"},
		{"Free Viagra! Order now and save 90%!", "spam"},
		{"Code review completed. Please merge the changes.", "ham"},
		{"You have 3 new messages in your inbox", "ham"},
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write([]string{"email_text", "label"}); err != nil {
		return FileAsset{}, err
	}
	for rep := 0; rep < 100; rep++ {
		for _, s := range samples {
			if err := w.Write([]string{s.text, s.label}); err != nil {
				return FileAsset{}, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return FileAsset{}, err
	}

	return FileAsset{
		Filename: "email_classification_dataset.csv",
		Content:  base64.StdEncoding.EncodeToString([]byte(sb.String())),
		MimeType: "text/csv",
	}, nil
}

func productRoadmapWorkbook() (FileAsset, error) {
	header := []interface{}{"Feature", "User_Demand", "Business_Impact", "Development_Effort", "Revenue_Impact", "RICE_Score"}
	rows := [][]interface{}{
		{"User Authentication", 95, 90, 3, 85, 28.3},
		{"Dashboard Analytics", 87, 85, 5, 80, 14.8},
		{"Mobile App", 92, 80, 8, 75, 9.2},
		{"API Integration", 78, 70, 4, 65, 13.6},
		{"Push Notifications", 65, 60, 2, 55, 21.7},
		{"Advanced Search", 82, 75, 6, 70, 10.2},
		{"Team Collaboration", 88, 85, 7, 80, 10.6},
		{"Data Export", 71, 65, 3, 60, 19.3},
		{"Custom Themes", 45, 40, 2, 35, 15.8},
		{"Real-time Chat", 73, 70, 5, 65, 9.5},
	}
	return workbookAsset("product_roadmap_data.xlsx", "Product_Features", header, rows)
}

func productMetricsWorkbook() (FileAsset, error) {
	header := []interface{}{"Metric", "Current_Value", "Previous_Month", "Target", "Trend"}
	rows := [][]interface{}{
		{"Monthly Active Users", 12500, 11800, 15000, "↗️"},
		{"Daily Active Users", 4200, 3900, 5000, "↗️"},
		{"User Retention (7-day)", "68%", "65%", "75%", "↗️"},
		{"User Retention (30-day)", "45%", "42%", "50%", "↗️"},
		{"Conversion Rate", "12.5%", "11.8%", "15%", "↗️"},
		{"Average Session Duration", "8m 32s", "7m 45s", "10m", "↗️"},
		{"Bounce Rate", "35%", "38%", "30%", "↘️"},
		{"Feature Adoption Rate", "23%", "21%", "30%", "↗️"},
		{"Customer Satisfaction Score", "4.2/5", "4.0/5", "4.5/5", "↗️"},
		{"Churn Rate", "8%", "9%", "5%", "↘️"},
	}
	return workbookAsset("product_metrics_dashboard.xlsx", "Product_Metrics", header, rows)
}
