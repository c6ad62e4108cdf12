package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/booking-api/internal/cache"
	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
	"github.com/barberdesk/booking-api/internal/timezone"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 60 * time.Second
)

type DashboardHandler struct {
	db    *gorm.DB
	cache cache.Cache
	tz    string
}

func NewDashboardHandler(db *gorm.DB, c cache.Cache, tz string) *DashboardHandler {
	return &DashboardHandler{db: db, cache: c, tz: tz}
}

type UpcomingAppointment struct {
	ID      uint   `json:"id"`
	Client  string `json:"client"`
	Barber  string `json:"barber"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

type DashboardStats struct {
	AppointmentsToday    int64                 `json:"appointments_today"`
	TotalAppointments    int64                 `json:"total_appointments"`
	TotalClients         int64                 `json:"total_clients"`
	ActiveBarbers        int64                 `json:"active_barbers"`
	MonthlyRevenue       float64               `json:"monthly_revenue"`
	UpcomingAppointments []UpcomingAppointment `json:"upcoming_appointments"`
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if raw, hit, err := h.cache.Get(ctx, dashboardStatsKey); err == nil && hit {
		var stats DashboardStats
		if json.Unmarshal(raw, &stats) == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	stats, err := h.computeStats()
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao calcular estatísticas.")
		return
	}

	if raw, err := json.Marshal(stats); err == nil {
		_ = h.cache.Set(ctx, dashboardStatsKey, raw, dashboardStatsTTL)
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) computeStats() (*DashboardStats, error) {
	now := timezone.NowIn(h.tz)
	loc := now.Location()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats := &DashboardStats{}

	if err := h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Count(&stats.AppointmentsToday).Error; err != nil {
		return nil, err
	}

	if err := h.db.Model(&models.Appointment{}).
		Count(&stats.TotalAppointments).Error; err != nil {
		return nil, err
	}

	if err := h.db.Model(&models.Client{}).
		Count(&stats.TotalClients).Error; err != nil {
		return nil, err
	}

	if err := h.db.Model(&models.Barber{}).
		Where("active = ?", true).
		Count(&stats.ActiveBarbers).Error; err != nil {
		return nil, err
	}

	// Revenue counts completed appointments only.
	var revenue *float64
	if err := h.db.Model(&models.Appointment{}).
		Select("SUM(services.price)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where(
			"appointments.status = ? AND appointments.start_time >= ? AND appointments.start_time < ?",
			string(domain.StatusCompleted), monthStart, monthEnd,
		).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.MonthlyRevenue = *revenue
	}

	var upcoming []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"status IN ? AND start_time >= ?",
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			now,
		).
		Order("start_time ASC").
		Limit(5).
		Find(&upcoming).Error; err != nil {
		return nil, err
	}

	stats.UpcomingAppointments = make([]UpcomingAppointment, 0, len(upcoming))
	for _, ap := range upcoming {
		stats.UpcomingAppointments = append(stats.UpcomingAppointments, UpcomingAppointment{
			ID:      ap.ID,
			Client:  ap.Client.Name,
			Barber:  ap.Barber.Name,
			Service: ap.Service.Name,
			Date:    ap.StartTime.In(loc).Format("2006-01-02"),
			Time:    ap.StartTime.In(loc).Format("15:04"),
			Status:  ap.Status,
		})
	}

	return stats, nil
}
