package events

var (
	VendorInvitedTopic  = "VendorInvitedEvent"
	VendorVerifiedTopic = "VendorVerifiedEvent"
)

type VendorInvited struct {
	PublicID string
	Country  string
}

type VendorVerified struct {
	PublicID string
	Accepted bool
	ByAdmin  bool
}
