package domain

// Store keys shared by every view in the running app. Each key holds one
// JSON document in the local store; writers replace the whole value.
const (
	StoreKeyUsers             = "skillbridge_users"
	StoreKeyPostedJobs        = "postedJobs"
	StoreKeyHiringFormData    = "hiringFormData"
	StoreKeyJobSeekerFormData = "jobSeekerFormData"
	StoreKeySelectedJob       = "selectedJob"
)
