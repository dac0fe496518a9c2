// Package fixture bundles the sample datasets the dashboards consume: the
// browsable job seekers, the public job listings, the two jobs seeded into
// an empty posted-jobs list, and the form suggestion vocabularies.
package fixture

import (
	"time"

	"skillbridge-backend/internal/domain"
)

// JobTypes feeds the job-type dropdowns and chips.
var JobTypes = []string{
	"Full-Time",
	"Part-Time",
	"Daily Wage",
	"Seasonal",
	"Contract",
	"Temporary",
}

// CommonSkills feeds the skill suggestion chips on the forms.
var CommonSkills = []string{
	"Physical Labor", "Heavy Lifting", "Construction Tools", "Hand Tools", "Power Tools", "Safety Equipment",
	"Basic Plumbing", "Basic Electrical", "Auto Repair", "Welding", "Carpentry", "Masonry",
	"Painting", "Gardening", "Cleaning", "Maintenance", "Assembly Work", "Warehouse Work",
	"Team Work", "Customer Service", "Learning Attitude", "Physical Stamina", "Outdoor Work", "Early Morning",
	"Hindi Speaking", "Local Language", "Rickshaw Driving", "Delivery Work", "Security Work", "Housekeeping",
}

// JobSeekers returns the candidates browsed on the employer dashboard.
func JobSeekers() []domain.SeekerProfile {
	return []domain.SeekerProfile{
		{
			ID:                1,
			Name:              "Ramesh Singh",
			Age:               32,
			Education:         "10th Pass",
			Skills:            domain.NewTagSet("Construction Tools", "Physical Labor", "Heavy Lifting", "Team Work"),
			JobTypePreference: "Daily Wage",
			Experience:        "5 years",
			Location:          "New Delhi, India",
		},
		{
			ID:                2,
			Name:              "Priya Sharma",
			Age:               29,
			Education:         "ITI - Welding",
			Skills:            domain.NewTagSet("Welding", "Metal Work", "Safety Equipment", "Physical Work"),
			JobTypePreference: "Full-Time",
			Experience:        "4 years",
			Location:          "Mumbai, India",
		},
		{
			ID:                3,
			Name:              "Amit Kumar",
			Age:               35,
			Education:         "12th Pass + Auto Mechanic Training",
			Skills:            domain.NewTagSet("Auto Repair", "Hand Tools", "Customer Service", "Physical Work"),
			JobTypePreference: "Full-Time",
			Experience:        "8 years",
			Location:          "Hyderabad, India",
		},
		{
			ID:                4,
			Name:              "Suresh Reddy",
			Age:               28,
			Education:         "10th Pass + Plumbing Apprenticeship",
			Skills:            domain.NewTagSet("Basic Plumbing", "Hand Tools", "Physical Work", "Learning Attitude"),
			JobTypePreference: "Daily Wage",
			Experience:        "3 years",
			Location:          "Chennai, India",
		},
		{
			ID:                5,
			Name:              "Kavya Nair",
			Age:               27,
			Education:         "12th Pass + Warehouse Training",
			Skills:            domain.NewTagSet("Inventory Management", "Heavy Lifting", "Physical Stamina", "Team Work"),
			JobTypePreference: "Part-Time",
			Experience:        "4 years",
			Location:          "Bangalore, India",
		},
		{
			ID:                6,
			Name:              "Rajesh Patel",
			Age:               31,
			Education:         "10th Pass + Gardening Certificate",
			Skills:            domain.NewTagSet("Gardening Tools", "Physical Labor", "Outdoor Work", "Plant Knowledge"),
			JobTypePreference: "Seasonal",
			Experience:        "6 years",
			Location:          "Pune, India",
		},
	}
}

// JobListings returns the public listings shown on the seeker dashboard.
func JobListings() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:             1,
			Title:          "Construction Worker",
			Organization:   "Delhi Builders Pvt Ltd",
			JobType:        "Daily Wage",
			SkillsRequired: domain.NewTagSet("Physical Labor", "Construction Tools", "Safety Awareness", "Team Work"),
			Description:    "Join our construction team for daily wage work. Physical labor required for building projects. Safety training provided. Good pay for hard work. ₹800-1200 per day.",
			Location:       "New Delhi, India",
			PostedDate:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Rajesh Kumar",
			Applications:   12,
			Views:          45,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             2,
			Title:          "Warehouse Worker",
			Organization:   "Flipkart Logistics",
			JobType:        "Part-Time",
			SkillsRequired: domain.NewTagSet("Heavy Lifting", "Inventory Management", "Physical Stamina", "Team Work"),
			Description:    "Warehouse work with good hourly pay. Loading, unloading, and organizing packages. Training provided. Flexible shifts available. ₹300-500 per hour.",
			Location:       "Mumbai, India",
			PostedDate:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Amit Sharma",
			Applications:   8,
			Views:          32,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             3,
			Title:          "Electrician Helper",
			Organization:   "Reliance Electrical Services",
			JobType:        "Full-Time",
			SkillsRequired: domain.NewTagSet("Basic Electrical Knowledge", "Hand Tools", "Safety Equipment", "Physical Work"),
			Description:    "Learn electrical work while earning good pay. No experience required - we train. Work with licensed electricians on residential and commercial projects. ₹15,000-25,000 per month.",
			Location:       "Bangalore, India",
			PostedDate:     time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Suresh Reddy",
			Applications:   15,
			Views:          58,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             4,
			Title:          "Plumber Assistant",
			Organization:   "Tata Plumbing Services",
			JobType:        "Daily Wage",
			SkillsRequired: domain.NewTagSet("Basic Plumbing", "Hand Tools", "Physical Work", "Customer Service"),
			Description:    "Join our plumbing team for daily wage work. Learn plumbing skills while earning. No experience needed - we provide training and tools. ₹600-1000 per day.",
			Location:       "Chennai, India",
			PostedDate:     time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Ravi Krishnan",
			Applications:   6,
			Views:          24,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             5,
			Title:          "Gardening Worker",
			Organization:   "Mahindra Green Services",
			JobType:        "Seasonal",
			SkillsRequired: domain.NewTagSet("Physical Labor", "Gardening Tools", "Plant Knowledge", "Outdoor Work"),
			Description:    "Seasonal gardening work with good pay. Mowing, planting, and general garden maintenance. Work outdoors in fresh air. Flexible schedule. ₹500-800 per day.",
			Location:       "Pune, India",
			PostedDate:     time.Date(2024, time.January, 22, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Vikram Patil",
			Applications:   9,
			Views:          37,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             6,
			Title:          "Auto Mechanic Helper",
			Organization:   "Maruti Service Center",
			JobType:        "Full-Time",
			SkillsRequired: domain.NewTagSet("Basic Auto Knowledge", "Hand Tools", "Physical Work", "Learning Attitude"),
			Description:    "Learn auto repair while earning good wages. No experience required - we train. Work with experienced mechanics on all types of vehicles. ₹12,000-20,000 per month.",
			Location:       "Hyderabad, India",
			PostedDate:     time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC),
			PostedBy:       "Kiran Reddy",
			Applications:   11,
			Views:          41,
			Status:         domain.JobStatusActive,
		},
	}
}

// SampleJobs seeds an empty posted-jobs list the first time the employer
// dashboard loads. Their counters are display-only and never change.
func SampleJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:             1,
			Title:          "Construction Worker",
			Organization:   "Delhi Builders Pvt Ltd",
			JobType:        "Daily Wage",
			SkillsRequired: domain.NewTagSet("Physical Labor", "Construction Tools", "Safety Awareness"),
			Description:    "Join our construction team for daily wage work. Physical labor required for building projects.",
			Location:       "New Delhi, India",
			PostedDate:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Applications:   12,
			Views:          45,
			Status:         domain.JobStatusActive,
		},
		{
			ID:             2,
			Title:          "Warehouse Worker",
			Organization:   "QuickShip Logistics",
			JobType:        "Part-Time",
			SkillsRequired: domain.NewTagSet("Heavy Lifting", "Inventory Management", "Physical Stamina"),
			Description:    "Warehouse work with good hourly pay. Loading, unloading, and organizing packages.",
			Location:       "Mumbai, India",
			PostedDate:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Applications:   8,
			Views:          32,
			Status:         domain.JobStatusActive,
		},
	}
}
