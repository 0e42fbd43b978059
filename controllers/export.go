package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"goldentouch-backend/reports"
	"goldentouch-backend/store"
	"goldentouch-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportController streams back-office collections as CSV downloads.
type ExportController struct {
	Store *store.Store
}

// Export handles GET /api/export/:entity for clients, appointments,
// expenses, revenues and feedback.
func (ec *ExportController) Export(c *gin.Context) {
	entity := c.Param("entity")

	header, rows, err := ec.buildRows(entity)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve export data")
		return
	}
	if header == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown export entity: "+entity)
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteCSV(&buf, header, rows); err != nil {
		if errors.Is(err, utils.ErrNoExportData) {
			utils.RespondWithError(c, http.StatusNotFound, "No data to export")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export file")
		return
	}

	filename := utils.ExportFilename(entity, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (ec *ExportController) buildRows(entity string) ([]string, [][]string, error) {
	switch entity {
	case "clients":
		clients, err := ec.Store.ListClients()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"id", "name", "email", "phone", "loyal", "birthday"}
		rows := make([][]string, 0, len(clients))
		for _, cl := range clients {
			rows = append(rows, []string{
				formatID(cl.ID), cl.Name, cl.Email, cl.Phone,
				strconv.FormatBool(cl.IsLoyal), cl.Birthday,
			})
		}
		return header, rows, nil

	case "appointments":
		appointments, err := ec.Store.ListAppointments()
		if err != nil {
			return nil, nil, err
		}
		clients, err := ec.Store.ListClients()
		if err != nil {
			return nil, nil, err
		}
		services, err := ec.Store.ListServices()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"id", "date", "time", "client", "service", "price", "status"}
		rows := make([][]string, 0, len(appointments))
		for _, a := range appointments {
			d := reports.Details(a, clients, services)
			rows = append(rows, []string{
				formatID(a.ID), a.Date, a.Time, d.ClientName, d.ServiceName,
				formatAmount(d.Price), a.Status,
			})
		}
		return header, rows, nil

	case "expenses":
		expenses, err := ec.Store.ListExpenses()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"id", "date", "item", "category", "amount"}
		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			rows = append(rows, []string{
				formatID(e.ID), e.Date, e.Item, e.Category, formatAmount(e.Amount),
			})
		}
		return header, rows, nil

	case "revenues":
		revenues, err := ec.Store.ListRevenues()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"id", "date", "item", "category", "amount"}
		rows := make([][]string, 0, len(revenues))
		for _, r := range revenues {
			rows = append(rows, []string{
				formatID(r.ID), r.Date, r.Item, r.Category, formatAmount(r.Amount),
			})
		}
		return header, rows, nil

	case "feedback":
		entries, err := ec.Store.ListFeedback()
		if err != nil {
			return nil, nil, err
		}
		header := []string{"id", "date", "client", "rating", "comment"}
		rows := make([][]string, 0, len(entries))
		for _, f := range entries {
			rows = append(rows, []string{
				formatID(f.ID), f.Date, f.ClientName,
				strconv.Itoa(f.Rating), strings.ReplaceAll(f.Comment, "\n", " "),
			})
		}
		return header, rows, nil
	}

	return nil, nil, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
