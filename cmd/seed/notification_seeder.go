package main

import (
	"log"

	"barberflow-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the database with default notification types.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "USER_LOGIN",
			DisplayName: "Login Activity",
			Template:    "You logged in from a new device",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "BARBERSHOP_REGISTERED",
			DisplayName: "New Barbershop Registration",
			Template:    "New barbershop registered: {barbershop_name}",
			TargetType:  "ADMIN",
			IsActive:    true,
		},
		{
			Code:        "APPOINTMENT_COMPLETED",
			DisplayName: "Appointment Completed",
			Template:    "Appointment for {client_name} was completed",
			TargetType:  "STAFF",
			IsActive:    true,
		},
		{
			Code:        "COMMAND_CLOSED",
			DisplayName: "Sale Closed",
			Template:    "Command for {client_name} closed at {total}",
			TargetType:  "STAFF",
			IsActive:    true,
		},
		{
			Code:        "SUBSCRIPTION_CREATED",
			DisplayName: "New Client Subscription",
			Template:    "New subscription: {plan_name} for {client_name}",
			TargetType:  "STAFF",
			IsActive:    true,
		},
		{
			Code:        "SUBSCRIPTION_PAYMENT_RECEIVED",
			DisplayName: "Subscription Payment Received",
			Template:    "Payment received for subscription {subscription_id}",
			TargetType:  "STAFF",
			IsActive:    true,
		},
		{
			Code:        "AUTOMATION_ALERT",
			DisplayName: "Automation Alert",
			Template:    "{rule_name}: {message}",
			TargetType:  "STAFF",
			IsActive:    true,
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			IsActive:    true,
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded successfully.")
}
