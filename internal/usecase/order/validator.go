package order

import (
	"time"

	domainOrder "pet-shop-api/internal/domain/order"
	appErrors "pet-shop-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// Window is a half-open time range [From, Until) plus the chart bucket unit for it.
type Window struct {
	From  time.Time
	Until time.Time
	Unit  string
}

// ResolveWindow turns dashboard parameters into a window. An explicit from/to
// range wins over fixRange; with neither, the current month is used.
func ResolveWindow(now time.Time, fixRange, from, to string) (*Window, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if from != "" || to != "" {
		start, end, err := ParseDateRange(from, to)
		if err != nil {
			return nil, err
		}
		if start == nil || end == nil {
			return nil, appErrors.NewValidationError("Invalid input", map[string]string{
				"dateRange": "The dateRange needs both from and to.",
			})
		}
		return &Window{From: *start, Until: *end, Unit: "day"}, nil
	}

	switch fixRange {
	case "today":
		return &Window{From: today, Until: today.AddDate(0, 0, 1), Unit: "hour"}, nil
	case "", "monthly":
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &Window{From: month, Until: month.AddDate(0, 1, 0), Unit: "day"}, nil
	case "yearly":
		year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return &Window{From: year, Until: year.AddDate(1, 0, 0), Unit: "month"}, nil
	default:
		return nil, appErrors.NewValidationError("Invalid input", map[string]string{
			"fixRange": "The selected fixRange is invalid.",
		})
	}
}

// ParseDateRange parses inclusive YYYY-MM-DD bounds. Either side may be empty.
// The returned until is the start of the day after to.
func ParseDateRange(from, to string) (*time.Time, *time.Time, error) {
	fields := map[string]string{}
	var start, end *time.Time

	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			fields["dateRange.from"] = "The dateRange.from does not match the format Y-m-d."
		} else {
			start = &t
		}
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			fields["dateRange.to"] = "The dateRange.to does not match the format Y-m-d."
		} else {
			next := t.AddDate(0, 0, 1)
			end = &next
		}
	}

	if len(fields) == 0 && start != nil && end != nil && !start.Before(*end) {
		fields["dateRange.to"] = "The dateRange.to must be a date after or equal to dateRange.from."
	}
	if len(fields) > 0 {
		return nil, nil, appErrors.NewValidationError("Invalid input", fields)
	}

	return start, end, nil
}

func toLineItems(items []LineItemRequest) []domainOrder.LineItem {
	out := make([]domainOrder.LineItem, len(items))
	for i, item := range items {
		out[i] = domainOrder.LineItem{Quantity: item.Quantity}
		if item.Product != nil {
			out[i].Product = *item.Product
		}
	}
	return out
}
