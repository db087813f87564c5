package entities

type AppointmentEmailData struct {
	PatientName        string
	AppointmentCode    string
	ProfessionalName   string
	ClinicName         string
	StartTimeFormatted string
	Reason             string
	CurrentYear        int
	Language           string
	Status             string
}
