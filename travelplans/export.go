package travelplans

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"roamly/apperr"
	"roamly/models"
	"roamly/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExportPlan renders a plan as a printable PDF itinerary with a QR code
// carrying the plan id. GET /api/plan/export/:id
func (h *Handlers) ExportPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.WriteErr(w, apperr.Validation("Invalid plan id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	var plan models.TravelPlan
	err = h.DB.TravelPlans.FindOne(ctx, bson.M{"_id": oid}).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		utils.WriteErr(w, apperr.NotFound("Plan not found"))
		return
	} else if err != nil {
		utils.WriteErr(w, apperr.Internal("Error fetching travel plan", err))
		return
	}

	pdfBytes, err := renderPlanPDF(plan)
	if err != nil {
		utils.WriteErr(w, apperr.Internal("Failed to render plan", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", plan.PlanName+".pdf"))
	w.Write(pdfBytes)
}

func renderPlanPDF(plan models.TravelPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, plan.PlanName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if plan.Description != "" {
		pdf.MultiCell(0, 6, plan.Description, "", "L", false)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("%s to %s", plan.StartDate, plan.EndDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+plan.Status, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, day := range plan.Days {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Date), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, act := range day.Activities {
			line := fmt.Sprintf("%s-%s  [%s] %s", act.StartTime, act.EndTime, act.Type, act.Title)
			pdf.CellFormat(150, 6, line, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, fmt.Sprintf("%.2f", act.Cost), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total cost: %.2f", plan.TotalCost), "", 1, "R", false, 0, "")

	png, err := qrcode.Encode(plan.ID.Hex(), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("plan-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("plan-qr", 170, 10, 25, 25, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
