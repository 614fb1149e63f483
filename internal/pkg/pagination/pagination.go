package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters
type Params struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 100

// MaxLimit is the maximum number of items per page
const MaxLimit = 1000

// TotalCountHeader carries the unpaginated result count
const TotalCountHeader = "X-Total-Count"

// GetParams extracts limit/offset pagination parameters from request
func GetParams(c *fiber.Ctx) Params {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}

// Write sends items as a bare JSON array and reports the total in a header
func Write(c *fiber.Ctx, items interface{}, total int64) error {
	c.Set(TotalCountHeader, strconv.FormatInt(total, 10))
	return c.JSON(items)
}
