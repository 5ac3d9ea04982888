package pages

import (
	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes sets up the public pages.
func SetupPageRoutes(app *fiber.App) {
	app.Get("/", ShowHomePage)
	app.Get("/about", ShowAboutPage)
}

func ShowHomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title":       "Campus Connect",
		"CurrentPage": "home",
	})
}

func ShowAboutPage(c *fiber.Ctx) error {
	return c.Render("about", fiber.Map{
		"Title":       "About - Campus Connect",
		"CurrentPage": "about",
	})
}
