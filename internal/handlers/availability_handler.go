package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type AvailabilityDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

// Get always answers the full week; unset days come back with empty
// times rather than a 404.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	schedule, err := h.loadSchedule(barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar agenda.")
		return
	}

	c.JSON(http.StatusOK, scheduleResponse(barberID, schedule))
}

// Update replaces the whole week atomically. No partial-day updates.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	barberID, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var schedule domain.WeekSchedule
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
			return
		}
		schedule[d.Weekday] = domain.DayWindow{
			Start: d.StartTime,
			End:   d.EndTime,
		}
	}

	if err := schedule.Validate(); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidSchedule, "Horário de início deve ser anterior ao de término.")
		return
	}

	if err := h.saveSchedule(barberID, schedule); err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar agenda.")
		return
	}

	c.JSON(http.StatusOK, scheduleResponse(barberID, schedule))
}

// ApplyMonday copies Monday's window into Tuesday through Saturday.
func (h *AvailabilityHandler) ApplyMonday(c *gin.Context) {
	barberID, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	schedule, err := h.loadSchedule(barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar agenda.")
		return
	}

	if err := schedule.ApplyMondayToWeekdays(); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidSchedule, "Defina o horário de segunda-feira primeiro.")
		return
	}

	if err := h.saveSchedule(barberID, schedule); err != nil {
		httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar agenda.")
		return
	}

	c.JSON(http.StatusOK, scheduleResponse(barberID, schedule))
}

// --------- helpers ---------

func (h *AvailabilityHandler) resolveBarber(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Barbeiro não encontrado.")
		return 0, false
	}

	return barber.ID, true
}

func (h *AvailabilityHandler) loadSchedule(barberID uint) (domain.WeekSchedule, error) {
	var schedule domain.WeekSchedule

	var rows []models.AvailabilityWindow
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return schedule, err
	}

	for _, row := range rows {
		if row.Weekday >= 0 && row.Weekday <= 6 {
			schedule[row.Weekday] = domain.DayWindow{
				Start: row.StartTime,
				End:   row.EndTime,
			}
		}
	}

	return schedule, nil
}

func (h *AvailabilityHandler) saveSchedule(barberID uint, schedule domain.WeekSchedule) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		var toCreate []models.AvailabilityWindow
		for weekday, win := range schedule {
			if !win.IsSet() {
				continue
			}
			toCreate = append(toCreate, models.AvailabilityWindow{
				BarberID:  barberID,
				Weekday:   weekday,
				StartTime: win.Start,
				EndTime:   win.End,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func scheduleResponse(barberID uint, schedule domain.WeekSchedule) gin.H {
	days := make([]AvailabilityDayConfig, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		win := schedule[weekday]
		days = append(days, AvailabilityDayConfig{
			Weekday:   int(weekday),
			StartTime: win.Start,
			EndTime:   win.End,
		})
	}

	return gin.H{
		"barber_id": barberID,
		"days":      days,
	}
}
