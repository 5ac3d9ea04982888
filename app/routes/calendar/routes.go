package calendar

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"campus-connect/app/config"
	"campus-connect/app/database"
	"campus-connect/app/models"
	"campus-connect/app/routes/auth"
	"campus-connect/app/services"
)

// SetupCalendarRoutes sets up the calendar page. The page requires a
// session; anonymous visitors are redirected to the default route.
func SetupCalendarRoutes(app *fiber.App) {
	app.Get("/calendar", auth.AuthMiddleware, renderCalendarPage)
}

// DayCell is one rendered cell of the month grid.
type DayCell struct {
	Date    time.Time
	IsToday bool
	Events  []models.Event
}

// UpcomingRow is an upcoming-list entry plus its edit-form prefill
// values.
type UpcomingRow struct {
	Event    models.Event
	FormType models.EventType
	FormDate string
}

func renderCalendarPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	now := time.Now()
	cursor := now
	if m := c.Query("month"); m != "" {
		if parsed, err := time.ParseInLocation("2006-01", m, time.Local); err == nil {
			cursor = parsed
		}
	}
	// Pin the cursor to the 1st so month arithmetic can't skip short
	// months (Mar 31 minus a month would normalize to Mar 3).
	cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.Local)

	searchQuery := c.Query("q")
	category := c.Query("type", services.CategoryAll)

	store := services.NewEventStore(config.GetDB())
	events := store.ListEvents()

	grid := services.MonthGrid(cursor)
	days := make([]DayCell, 0, len(grid))
	for _, d := range grid {
		days = append(days, DayCell{
			Date:    d,
			IsToday: services.StartOfDay(d).Equal(services.StartOfDay(now)),
			Events:  services.EventsOnDay(events, d, now),
		})
	}

	upcoming := services.UpcomingEvents(events, now, searchQuery, category)
	var nextEvent *models.Event
	if len(upcoming) > 0 {
		nextEvent = &upcoming[0]
	}

	// Edit forms only offer the authored category set, so legacy types
	// are normalized before prefill.
	rows := make([]UpcomingRow, 0, len(upcoming))
	for _, e := range upcoming {
		rows = append(rows, UpcomingRow{
			Event:    e,
			FormType: models.NormalizeEventType(e.Type),
			FormDate: e.Date.Format("2006-01-02"),
		})
	}

	categoryCounts, _ := database.GetEventCategoryCounts(config.GetDB())

	return c.Render("calendar", fiber.Map{
		"Title":          "Calendar - Campus Connect",
		"CurrentPage":    "calendar",
		"User":           user,
		"IsAdmin":        user.IsAdmin(),
		"MonthLabel":     cursor.Format("January 2006"),
		"PrevMonth":      cursor.AddDate(0, -1, 0).Format("2006-01"),
		"NextMonth":      cursor.AddDate(0, 1, 0).Format("2006-01"),
		"Days":           days,
		"TodayEvents":    services.TodayEvents(events, now),
		"TomorrowEvents": services.TomorrowEvents(events, now),
		"Upcoming":       rows,
		"UpcomingCount":  len(upcoming),
		"NextEvent":      nextEvent,
		"SearchQuery":    searchQuery,
		"Category":       category,
		"EventTypes":     models.AuthoredEventTypes,
		"CategoryCounts": categoryCounts,
	})
}
