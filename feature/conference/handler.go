package conference

import (
	"conference-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for conference data.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the conference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/conference")
	group.Get("/session-types", h.HandleSessionTypes)
	group.Get("/rooms", h.HandleRooms)
	group.Get("/tracks", h.HandleTracks)
	group.Get("/talks", h.HandleTalks)
	group.Get("/talks/:id", h.HandleTalk)
	group.Get("/speakers", h.HandleSpeakers)
	group.Get("/speakers/:id", h.HandleSpeaker)
	group.Get("/schedule/:day", h.HandleSchedule)
	group.Get("/schedule/:day/:room", h.HandleScheduleForRoom)
	group.Get("/rated", h.HandleRatedTalksOverall)
	group.Get("/rated/:day", h.HandleRatedTalks)
}

// HandleSessionTypes lists all session types.
// @Summary List Session Types
// @Tags conference
// @Produce json
// @Success 200 {array} models.SessionType
// @Router /conference/session-types [get]
func (h *Handler) HandleSessionTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.SessionTypes())
}

// HandleRooms lists all rooms.
// @Summary List Rooms
// @Tags conference
// @Produce json
// @Success 200 {array} models.Room
// @Router /conference/rooms [get]
func (h *Handler) HandleRooms(c *fiber.Ctx) error {
	return c.JSON(h.service.Rooms())
}

// HandleTracks lists all tracks.
// @Summary List Tracks
// @Tags conference
// @Produce json
// @Success 200 {array} models.Track
// @Router /conference/tracks [get]
func (h *Handler) HandleTracks(c *fiber.Ctx) error {
	return c.JSON(h.service.Tracks())
}

// HandleTalks lists all talks.
// @Summary List Talks
// @Tags conference
// @Produce json
// @Success 200 {array} models.Talk
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /conference/talks [get]
func (h *Handler) HandleTalks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	talks, err := h.service.Talks(c.Context())
	if err != nil {
		l.Error("Listing talks failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(talks)
}

// HandleTalk returns one talk by id.
// @Summary Get Talk
// @Tags conference
// @Produce json
// @Param id path string true "Talk ID"
// @Success 200 {object} models.Talk
// @Failure 404 {object} map[string]string "Not Found"
// @Router /conference/talks/{id} [get]
func (h *Handler) HandleTalk(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	talk, err := h.service.Talk(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Fetching talk failed", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if talk == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "talk not found"})
	}
	return c.JSON(talk)
}

// HandleSpeakers lists all speakers.
// @Summary List Speakers
// @Tags conference
// @Produce json
// @Success 200 {array} models.Speaker
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /conference/speakers [get]
func (h *Handler) HandleSpeakers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	speakers, err := h.service.Speakers(c.Context())
	if err != nil {
		l.Error("Listing speakers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(speakers)
}

// HandleSpeaker returns one speaker by id.
// @Summary Get Speaker
// @Tags conference
// @Produce json
// @Param id path string true "Speaker ID"
// @Success 200 {object} models.Speaker
// @Failure 404 {object} map[string]string "Not Found"
// @Router /conference/speakers/{id} [get]
func (h *Handler) HandleSpeaker(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	speaker, err := h.service.Speaker(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Fetching speaker failed", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if speaker == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "speaker not found"})
	}
	return c.JSON(speaker)
}

// HandleSchedule returns the schedule for one day.
// @Summary Get Schedule
// @Tags conference
// @Produce json
// @Param day path string true "Conference day (monday..friday)"
// @Success 200 {array} models.ScheduleSlot
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /conference/schedule/{day} [get]
func (h *Handler) HandleSchedule(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	slots, err := h.service.Schedule(c.Context(), c.Params("day"))
	if err != nil {
		l.Error("Fetching schedule failed", zap.String("day", c.Params("day")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(slots)
}

// HandleScheduleForRoom returns the schedule for one day in one room.
// @Summary Get Schedule For Room
// @Tags conference
// @Produce json
// @Param day path string true "Conference day (monday..friday)"
// @Param room path string true "Room name"
// @Success 200 {array} models.ScheduleSlot
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /conference/schedule/{day}/{room} [get]
func (h *Handler) HandleScheduleForRoom(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	slots, err := h.service.ScheduleForRoom(c.Context(), c.Params("day"), c.Params("room"))
	if err != nil {
		l.Error("Fetching room schedule failed",
			zap.String("day", c.Params("day")),
			zap.String("room", c.Params("room")),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(slots)
}

// HandleRatedTalks returns the voting results for one day.
// @Summary Get Rated Talks
// @Tags conference
// @Produce json
// @Param day path string true "Conference day (monday..friday)"
// @Success 200 {array} models.RatedTalk
// @Router /conference/rated/{day} [get]
func (h *Handler) HandleRatedTalks(c *fiber.Ctx) error {
	return c.JSON(h.service.RatedTalks(c.Context(), c.Params("day")))
}

// HandleRatedTalksOverall returns the voting results across all days.
// @Summary Get Rated Talks Overall
// @Tags conference
// @Produce json
// @Success 200 {array} models.RatedTalk
// @Router /conference/rated [get]
func (h *Handler) HandleRatedTalksOverall(c *fiber.Ctx) error {
	return c.JSON(h.service.RatedTalksOverall(c.Context()))
}
