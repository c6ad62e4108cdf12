package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberdesk/booking-api/internal/httperr"
	ucRating "github.com/barberdesk/booking-api/internal/usecase/rating"
)

type RatingHandler struct {
	createUC    *ucRating.CreateRating
	listUC      *ucRating.ListBarberRatings
	canReviewUC *ucRating.CanReview
}

func NewRatingHandler(
	createUC *ucRating.CreateRating,
	listUC *ucRating.ListBarberRatings,
	canReviewUC *ucRating.CanReview,
) *RatingHandler {
	return &RatingHandler{
		createUC:    createUC,
		listUC:      listUC,
		canReviewUC: canReviewUC,
	}
}

type CreateRatingRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	Score         int    `json:"score" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=500"`
	AppointmentID *uint  `json:"appointment_id"`
}

func (h *RatingHandler) Create(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rating, err := h.createUC.Execute(c.Request.Context(), ucRating.CreateRatingInput{
		BarberID:      uint(barberID),
		ClientID:      req.ClientID,
		Score:         req.Score,
		Comment:       req.Comment,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			httperr.NotFound(c, httperr.CodeNotFound, "Registro não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidState):
			httperr.BadRequest(c, httperr.CodeInvalidState, "Avaliação exige agendamento concluído.")
		case httperr.IsBusiness(err, httperr.CodeConflict):
			httperr.Conflict(c, httperr.CodeConflict, "Agendamento já avaliado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidScore):
			httperr.BadRequest(c, httperr.CodeInvalidScore, "Nota deve ser entre 1 e 5.")
		case httperr.IsBusiness(err, httperr.CodeCommentTooLong):
			httperr.BadRequest(c, httperr.CodeCommentTooLong, "Comentário muito longo.")
		default:
			httperr.Internal(c, "failed_to_create_rating", "Erro ao criar avaliação.")
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) ListByBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	out, err := h.listUC.Execute(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.WriteBusiness(c, err, "Barbeiro não encontrado.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *RatingHandler) CanReview(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ok, err := h.canReviewUC.Execute(c.Request.Context(), uint(appointmentID))
	if err != nil {
		httperr.WriteBusiness(c, err, "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"can_review": ok})
}
