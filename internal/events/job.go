package events

var JobCreatedTopic = "JobCreatedEvent"

type JobCreated struct {
	JobID           int
	Country         string
	AssignedVendors int
}
