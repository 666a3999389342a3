package render

// Fallback copy used when the document leaves a field empty.
var (
	DefaultName = "Your Name"

	CoreExpertiseTitle = "Core Expertise"

	RolesBlurb = "Delivered digital transformation, automation, and data solutions across global teams"

	ContactButton  = "Contact Me"
	ProjectsButton = "View Projects"
	DownloadButton = "Download CV"

	ConnectHeading = "Connect"
	RightsReserved = "All rights reserved."
)

const highlightSeparator = " • "
