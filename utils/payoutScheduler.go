package utils

import (
	"edusphere/database"
	"edusphere/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PAYOUT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ProcessPendingWithdrawals settles all PENDING withdrawal requests against
// the instructors' earnings balances. Requests exceeding the balance are
// rejected; the rest are marked PROCESSED and the balance is deducted.
func ProcessPendingWithdrawals(db *gorm.DB) {
	var pending []models.Withdrawal
	if err := db.Where("status = ? AND is_deleted = ?", models.WithdrawalStatusPending, false).
		Order("created_at asc").
		Find(&pending).Error; err != nil {
		logScheduler("Error fetching pending withdrawals: " + err.Error())
		return
	}

	for _, withdrawal := range pending {
		processWithdrawal(db, withdrawal)
	}

	if len(pending) > 0 {
		logScheduler("Processed pending withdrawal batch")
	}
}

func processWithdrawal(db *gorm.DB, withdrawal models.Withdrawal) {
	now := time.Now()

	var user models.User
	if err := db.Select("name, email").First(&user, withdrawal.UserID).Error; err != nil {
		logScheduler("Skipping withdrawal, user not found: " + err.Error())
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var profile models.InstructorProfile
		if err := tx.Where("user_id = ? AND is_deleted = ?", withdrawal.UserID, false).First(&profile).Error; err != nil {
			return err
		}

		if profile.Balance < withdrawal.Amount {
			withdrawal.Status = models.WithdrawalStatusRejected
			withdrawal.ProcessedAt = &now
			withdrawal.FailureReason = "Insufficient earnings balance"
			return tx.Save(&withdrawal).Error
		}

		profile.Balance -= withdrawal.Amount
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		withdrawal.Status = models.WithdrawalStatusProcessed
		withdrawal.ProcessedAt = &now
		return tx.Save(&withdrawal).Error
	})
	if err != nil {
		logScheduler("Error processing withdrawal: " + err.Error())
		return
	}

	if user.Email != "" {
		if withdrawal.Status == models.WithdrawalStatusProcessed {
			SendWithdrawalProcessedEmail(user.Email, user.Name, withdrawal.Amount)
		} else {
			SendWithdrawalRejectedEmail(user.Email, user.Name, withdrawal.Amount, withdrawal.FailureReason)
		}
	}
}

// StartPayoutScheduler runs the withdrawal batch every day at 02:00
func StartPayoutScheduler(c *cron.Cron) {
	c.AddFunc("0 2 * * *", func() {
		ProcessPendingWithdrawals(database.Database.Db)
	})
	logScheduler("Payout scheduler started - runs daily at 02:00")
}

// InitializePayoutScheduler initializes the payout cron
func InitializePayoutScheduler() *cron.Cron {
	logScheduler("Initializing payout scheduler...")

	c := cron.New()
	StartPayoutScheduler(c)
	c.Start()

	logScheduler("Payout scheduler initialized successfully")
	return c
}
