package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
	// Field is the name validation errors use for this input.
	Field       string
}

// Texts contains help information for all booking fields
var Texts = map[string]HelpText{
	"city": {
		Title:       "CITY",
		Field:       "City",
		Description: "City or municipality where you want to be seen.",
		Details:     "Used to find the clinics closest to you.",
	},
	"province": {
		Title:       "PROVINCE",
		Field:       "Province",
		Description: "Province of the city above.",
	},
	"zip_code": {
		Title:       "ZIP CODE",
		Field:       "Zip Code",
		Description: "Postal code of your area.",
		Details:     "Example: 4231",
	},
	"hospital": {
		Title:       "HOSPITAL",
		Description: "Mental wellness centers near you.",
		Details:     "Rating is out of 5. Distance is from the location you entered.",
	},
	"view_doctors": {
		Title:       "HOSPITAL DETAILS",
		Description: "Address, rating and open hours of the selected center.",
		Details:     "Continue to choose a doctor, or go back to pick another center.",
	},
	"doctor": {
		Title:       "DOCTOR",
		Description: "Licensed professionals available for consultation.",
		Details:     "Specialties describe the kind of therapy each doctor practices.",
	},
	"name": {
		Title:       "FULL NAME",
		Field:       "Name",
		Description: "Name of the patient attending the consultation.",
	},
	"age": {
		Title:       "AGE",
		Field:       "Age",
		Description: "Age of the patient in years.",
		Details:     "Whole number, for example 30.",
	},
	"contact": {
		Title:       "CONTACT NUMBER",
		Field:       "Contact",
		Description: "Phone number where the clinic can reach you.",
	},
	"gender": {
		Title:       "GENDER",
		Description: "How the patient identifies.",
		Details:     "You may choose not to say.",
	},
	"address": {
		Title:       "ADDRESS",
		Field:       "Address",
		Description: "Home address of the patient.",
	},
	"concern": {
		Title:       "CONCERN",
		Field:       "Concern",
		Description: "What you would like to talk about.",
		Details:     "A few words are enough. The doctor reads this before the session.",
	},
	"date": {
		Title:       "DATE",
		Field:       "Date",
		Description: "Day of the appointment.",
		Details:     "Format: YYYY-MM-DD. Today or any later day.",
	},
	"time_slot": {
		Title:       "TIME SLOT",
		Field:       "Time Slot",
		Description: "Available one hour slots for the chosen day.",
		Details:     "Only one slot can be selected.",
	},
	"consultation": {
		Title:       "CONSULTATION TYPE",
		Field:       "Consultation Type",
		Description: "How you will meet the doctor.",
		Details: `Online - video call, $100
Face-to-Face - at the clinic, $150`,
	},
	"accept": {
		Title:       "CONFIRMATION",
		Description: "Check the details before booking.",
		Details:     "Accept books the appointment. Back lets you change the consultation type.",
	},
}
