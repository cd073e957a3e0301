package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-station/internal/station"
	"github.com/i474232898/weather-station/internal/strategy"
	"github.com/i474232898/weather-station/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, st *station.Station, strategies *strategy.Builder) {
	api := app.Group("/api/weather")

	api.Get("/current", func(c *fiber.Ctx) error {
		return c.JSON(st.CurrentReading())
	})

	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{
			Strategy:  st.StrategyName(),
			Observers: st.Observers(),
			Reading:   st.CurrentReading(),
		})
	})

	api.Post("/refresh", func(c *fiber.Ctx) error {
		return c.JSON(st.Refresh(c.UserContext()))
	})

	api.Post("/strategy/realtime", func(c *fiber.Ctx) error {
		st.SetStrategy(strategies.Realtime(c.Query("city")))
		return c.JSON(st.Refresh(c.UserContext()))
	})

	api.Post("/strategy/simulated", func(c *fiber.Ctx) error {
		st.SetStrategy(strategies.Simulated())
		return c.JSON(st.Refresh(c.UserContext()))
	})

	api.Post("/strategy/scheduled", func(c *fiber.Ctx) error {
		st.SetStrategy(strategies.Scheduled(c.Query("city")))
		return c.JSON(st.Refresh(c.UserContext()))
	})

	api.Post("/strategy/manual", func(c *fiber.Ctx) error {
		var req manualRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		manual := strategies.Manual()
		res := manual.SetManualData(*req.Temp, *req.Humidity, *req.Pressure, *req.Wind)
		if !res.Accepted {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   true,
				"message": res.Reason,
				"fields":  res.Fields,
			})
		}

		st.SetStrategy(manual)
		return c.JSON(st.Refresh(c.UserContext()))
	})
}

// manualRequest is the body of the manual strategy endpoint. Pointers let
// "required" tell a missing field apart from a legitimate zero.
type manualRequest struct {
	Temp     *float64 `json:"temp" validate:"required"`
	Humidity *float64 `json:"humidity" validate:"required"`
	Pressure *float64 `json:"pressure" validate:"required"`
	Wind     *float64 `json:"wind" validate:"required"`
}

type statusResponse struct {
	Strategy  string          `json:"strategy"`
	Observers []string        `json:"observers"`
	Reading   weather.Reading `json:"reading"`
}
