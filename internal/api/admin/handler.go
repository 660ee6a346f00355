package admin

import (
	"net/http"
	"time"

	"compliance-app/database"
	"compliance-app/internal/domain/billing"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Lastname           string     `json:"lastname"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	IsVerified         bool       `json:"is_verified"`
	TierID             string     `json:"tier_id"`
	TierName           string     `json:"tier_name"`
	SubscriptionStatus *string    `json:"subscription_status,omitempty"`
	ReportsUsed        int        `json:"reports_used"`
	ReportsQuota       int        `json:"reports_quota"`
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID        *string    `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	TierID     string  `json:"tier_id"`
	AmountGBP  float64 `json:"amount_gbp"`
	Status     string  `json:"status"`
	ReceiptURL *string `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int            `json:"total_users"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentRevenue float64        `json:"recent_revenue"`
	UsersPerTier  map[string]int `json:"users_per_tier"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		tierName := u.TierID
		if t, ok := tiers.ByID(u.TierID); ok {
			tierName = t.Name
		}

		adminUsers = append(adminUsers, AdminUser{
			ID:                 u.ID,
			Name:               u.Name,
			Lastname:           u.Lastname,
			Email:              u.Email,
			Role:               u.Role,
			IsVerified:         u.IsVerified,
			TierID:             u.TierID,
			TierName:           tierName,
			SubscriptionStatus: u.SubscriptionStatus,
			ReportsUsed:        u.ReportsUsed,
			ReportsQuota:       u.ReportsQuota,
			StripeCustomerID:   u.StripeCustomerID,
			StripeSubID:        u.StripeSubscriptionID,
			CurrentPeriodEnd:   u.CurrentPeriodEnd,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		result = append(result, AdminPayment{
			ID:         p.ID,
			Email:      p.User.Email,
			TierID:     p.TierID,
			AmountGBP:  p.AmountGBP,
			Status:     p.Status,
			ReceiptURL: p.ReceiptURL,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_gbp), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_gbp), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type TierCount struct {
		TierID string
		Count  int
	}
	var counts []TierCount

	database.DB.
		Table("users").
		Select("tier_id, COUNT(id) as count").
		Group("tier_id").
		Scan(&counts)

	stats.UsersPerTier = map[string]int{}
	for _, tc := range counts {
		name := tc.TierID
		if t, ok := tiers.ByID(tc.TierID); ok {
			name = t.Name
		}
		stats.UsersPerTier[name] = tc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"payments": payments,
	})
}
