package domain

import "time"

// Agent represents a brokerage agent referenced by properties.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Avatar       *string   `json:"avatar,omitempty"`
	SalesCount   int       `json:"salesCount"`
	TotalRevenue float64   `json:"totalRevenue"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AgentPerformance summarizes an agent's track record.
type AgentPerformance struct {
	Agent         Agent   `json:"agent"`
	TotalSales    int     `json:"totalSales"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AverageRating float64 `json:"averageRating"`
}

// DashboardStats are the headline numbers for the dashboard.
type DashboardStats struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	RentalRevenue     float64 `json:"rentalRevenue"`
	LuxuryInventory   int     `json:"luxuryInventory"`
	AvailableListings int     `json:"availableListings"`
	ActiveAgents      int     `json:"activeAgents"`
	TotalProperties   int     `json:"totalProperties"`
}
