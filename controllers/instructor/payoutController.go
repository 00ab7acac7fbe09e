package instructorController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"

	"github.com/gofiber/fiber/v2"
)

// GetEarnings returns the caller's payout balance and lifetime earnings
func GetEarnings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var profile models.InstructorProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor profile not found!", nil)
	}

	var pendingWithdrawals int64
	db.Model(&models.Withdrawal{}).
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.WithdrawalStatusPending, false).
		Count(&pendingWithdrawals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched successfully!", fiber.Map{
		"balance":             profile.Balance,
		"total_earnings":      profile.TotalEarnings,
		"pending_withdrawals": pendingWithdrawals,
	})
}

// RequestWithdrawal queues a payout request for the daily batch
func RequestWithdrawal(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedWithdrawal").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var profile models.InstructorProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor profile not found!", nil)
	}

	if profile.Balance < reqData.Amount {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Insufficient earnings balance!", nil)
	}

	// One pending request at a time
	var pending models.Withdrawal
	if err := db.Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.WithdrawalStatusPending, false).First(&pending).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A withdrawal request is already pending!", nil)
	}

	withdrawal := models.Withdrawal{
		UserID: userID,
		Amount: reqData.Amount,
		Status: models.WithdrawalStatusPending,
	}

	if err := db.Create(&withdrawal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit withdrawal request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Withdrawal request submitted successfully!", withdrawal)
}

// GetWithdrawals lists the caller's withdrawal history
func GetWithdrawals(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var withdrawals []models.Withdrawal
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&withdrawals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawals fetched successfully!", fiber.Map{
		"withdrawals": withdrawals,
		"total":       len(withdrawals),
	})
}
