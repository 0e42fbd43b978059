// Package reports derives computed views over store snapshots: joined
// appointment details, revenue/expense/profit rollups, loyalty rankings and
// filtered client lists. Every function is pure and returns a zero value
// for empty input.
package reports

import (
	"sort"
	"strings"

	"goldentouch-backend/models"
)

// Placeholder values substituted when an appointment references a deleted
// client or service.
const (
	placeholderName  = "N/A"
	placeholderEmoji = "❓"
)

// AppointmentDetails is an appointment joined with its client and service.
type AppointmentDetails struct {
	models.Appointment
	ClientName  string  `json:"clientName"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Emoji       string  `json:"emoji"`
}

// Details joins an appointment with its referents, tolerating dangling
// references by substituting placeholders.
func Details(a models.Appointment, clients []models.Client, services []models.Service) AppointmentDetails {
	d := AppointmentDetails{
		Appointment: a,
		ClientName:  placeholderName,
		ServiceName: placeholderName,
		Emoji:       placeholderEmoji,
	}
	for _, c := range clients {
		if c.ID == a.ClientID {
			d.ClientName = c.Name
			break
		}
	}
	for _, s := range services {
		if s.ID == a.ServiceID {
			d.ServiceName = s.Name
			d.Price = s.Price
			d.Emoji = s.Emoji
			break
		}
	}
	return d
}

// Upcoming returns non-cancelled appointments dated on or after asOf,
// ascending by (date, time). Dates are YYYY-MM-DD strings, so string
// comparison is chronological.
func Upcoming(appointments []models.Appointment, clients []models.Client, services []models.Service, asOf string) []AppointmentDetails {
	details := make([]AppointmentDetails, 0, len(appointments))
	for _, a := range appointments {
		if a.Date < asOf || a.Status == models.StatusCancelled {
			continue
		}
		details = append(details, Details(a, clients, services))
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Date != details[j].Date {
			return details[i].Date < details[j].Date
		}
		return details[i].Time < details[j].Time
	})
	return details
}

// History returns every appointment joined with its referents, newest
// first.
func History(appointments []models.Appointment, clients []models.Client, services []models.Service) []AppointmentDetails {
	details := make([]AppointmentDetails, 0, len(appointments))
	for _, a := range appointments {
		details = append(details, Details(a, clients, services))
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Date != details[j].Date {
			return details[i].Date > details[j].Date
		}
		return details[i].Time > details[j].Time
	})
	return details
}

// RevenueForMonth sums the service price of every confirmed appointment in
// the given month plus every manual revenue record dated in it.
func RevenueForMonth(appointments []models.Appointment, services []models.Service, revenues []models.Revenue, year, month int) float64 {
	total := appointmentRevenue(appointments, services, func(y, m int) bool {
		return y == year && m == month
	})
	for _, r := range revenues {
		if y, m, ok := splitDate(r.Date); ok && y == year && m == month {
			total += r.Amount
		}
	}
	return total
}

// RevenueForYear sums confirmed appointment prices and manual revenue
// records for the whole year. Manual records count here just as they do in
// the monthly rollup, so the twelve months of a year always add up to it.
func RevenueForYear(appointments []models.Appointment, services []models.Service, revenues []models.Revenue, year int) float64 {
	total := appointmentRevenue(appointments, services, func(y, _ int) bool {
		return y == year
	})
	for _, r := range revenues {
		if y, _, ok := splitDate(r.Date); ok && y == year {
			total += r.Amount
		}
	}
	return total
}

// ExpensesForMonth sums expense amounts dated in the given month.
func ExpensesForMonth(expenses []models.Expense, year, month int) float64 {
	var total float64
	for _, e := range expenses {
		if y, m, ok := splitDate(e.Date); ok && y == year && m == month {
			total += e.Amount
		}
	}
	return total
}

// ProfitForMonth is monthly revenue minus monthly expenses.
func ProfitForMonth(appointments []models.Appointment, services []models.Service, revenues []models.Revenue, expenses []models.Expense, year, month int) float64 {
	return RevenueForMonth(appointments, services, revenues, year, month) -
		ExpensesForMonth(expenses, year, month)
}

func appointmentRevenue(appointments []models.Appointment, services []models.Service, match func(year, month int) bool) float64 {
	prices := make(map[uint]float64, len(services))
	for _, s := range services {
		prices[s.ID] = s.Price
	}
	var total float64
	for _, a := range appointments {
		if a.Status != models.StatusConfirmed {
			continue
		}
		if y, m, ok := splitDate(a.Date); ok && match(y, m) {
			total += prices[a.ServiceID] // missing service counts as 0
		}
	}
	return total
}

// RankedClient is a client annotated with their confirmed appointment
// count.
type RankedClient struct {
	models.Client
	ConfirmedCount int `json:"confirmedCount"`
}

// LoyaltyRanking orders clients by confirmed appointment count, descending.
// Ties keep the input order (stable sort), so earlier-registered clients
// rank first.
func LoyaltyRanking(clients []models.Client, appointments []models.Appointment) []RankedClient {
	counts := make(map[uint]int, len(clients))
	for _, a := range appointments {
		if a.Status == models.StatusConfirmed {
			counts[a.ClientID]++
		}
	}
	ranked := make([]RankedClient, 0, len(clients))
	for _, c := range clients {
		ranked = append(ranked, RankedClient{Client: c, ConfirmedCount: counts[c.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ConfirmedCount > ranked[j].ConfirmedCount
	})
	return ranked
}

// TopLoyalClients returns the first five of the loyalty ranking.
func TopLoyalClients(clients []models.Client, appointments []models.Appointment) []RankedClient {
	ranked := LoyaltyRanking(clients, appointments)
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// BirthdaysOn returns the clients whose birthday falls on the given date's
// month and day, ignoring year.
func BirthdaysOn(clients []models.Client, date string) []models.Client {
	if len(date) < 10 {
		return nil
	}
	monthDay := date[5:10]
	var matches []models.Client
	for _, c := range clients {
		if len(c.Birthday) >= 10 && c.Birthday[5:10] == monthDay {
			matches = append(matches, c)
		}
	}
	return matches
}

// FilterClients returns clients whose name or email contains the term,
// case-insensitively. An empty term returns all clients.
func FilterClients(clients []models.Client, term string) []models.Client {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return clients
	}
	var matches []models.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) {
			matches = append(matches, c)
		}
	}
	return matches
}

// TotalRevenue sums all manual revenue records.
func TotalRevenue(revenues []models.Revenue) float64 {
	var total float64
	for _, r := range revenues {
		total += r.Amount
	}
	return total
}

// TotalExpenses sums all expense records.
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// NetIncome is total manual revenue minus total expenses.
func NetIncome(revenues []models.Revenue, expenses []models.Expense) float64 {
	return TotalRevenue(revenues) - TotalExpenses(expenses)
}

// Growth returns the percentage change from previous to current. A zero
// previous period reports 0 when current is also zero, otherwise 100.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
