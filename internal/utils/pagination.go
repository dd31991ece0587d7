package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds parsed page/limit query parameters. A zero Limit means the
// caller did not ask for pagination and the full collection is returned.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads optional page and limit query parameters.
func ParsePagination(c *fiber.Ctx) Pagination {
	pg := Pagination{Page: 1}

	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			pg.Limit = limit
		}
	}

	if v := c.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 1 {
			pg.Page = page
		}
	}

	if pg.Limit > 0 {
		pg.Offset = (pg.Page - 1) * pg.Limit
	}

	return pg
}
