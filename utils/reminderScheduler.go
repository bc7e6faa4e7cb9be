package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"academia/notifier"
	"academia/store"
)

func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendUpcomingReminders emails every registrant of a live course whose
// start date falls within the next 48 hours
func sendUpcomingReminders() {
	live := true
	courses, err := store.Data.Courses(store.CourseFilter{Live: &live})
	if err != nil {
		logScheduler("Error fetching live courses: " + err.Error())
		return
	}

	now := time.Now()
	for _, course := range courses {
		details := course.LiveDetails.Data()
		if details.StartDate == "" {
			continue
		}

		start, err := time.Parse("2006-01-02", details.StartDate)
		if err != nil {
			logScheduler("Invalid start date on course " + course.Slug + ": " + details.StartDate)
			continue
		}

		if start.Before(now) || start.After(now.Add(48*time.Hour)) {
			continue
		}

		regs, err := store.Data.RegistrationsByCourse(course.ID)
		if err != nil {
			logScheduler("Error fetching registrations for " + course.Slug + ": " + err.Error())
			continue
		}

		for i := range regs {
			notifier.SendLiveReminderEmail(&course, &regs[i], details.StartDate)
		}
		logScheduler("Sent " + course.Slug + " reminders")
	}
}

// StartReminderScheduler runs the daily reminder pass for upcoming live
// course sessions
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	// Every day at 08:00
	if _, err := c.AddFunc("0 8 * * *", sendUpcomingReminders); err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}

	c.Start()
	logScheduler("Reminder scheduler started")
	return c
}
