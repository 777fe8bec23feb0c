package responses

import "github.com/lakshana011/HealUp/internal/app/models"

// CalendarDay is one cell of the month grid. Blank cells pad the first week
// so that day 1 lands on its weekday column.
type CalendarDay struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Blank      bool   `json:"blank,omitempty"`
	Past       bool   `json:"past,omitempty"`
	Today      bool   `json:"today,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
	Selectable bool   `json:"selectable"`
}

type MonthView struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	MonthName string        `json:"monthName"`
	DayNames  []string      `json:"dayNames"`
	Days      []CalendarDay `json:"days"`
	PrevMonth string        `json:"prevMonth"`
	NextMonth string        `json:"nextMonth"`
}

type SlotOption struct {
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

type SlotPickerView struct {
	Slots        []SlotOption `json:"slots"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"emptyMessage,omitempty"`
}

// DoctorProfileView is the slot-selection step: doctor detail plus the
// calendar and, once a date is chosen, that date's slot picker. The slot list
// is fetched fresh for every request and replaces whatever the client held.
type DoctorProfileView struct {
	Doctor       DoctorView      `json:"doctor"`
	Calendar     MonthView       `json:"calendar"`
	SelectedDate string          `json:"selectedDate,omitempty"`
	SelectedSlot string          `json:"selectedSlot,omitempty"`
	SlotPicker   *SlotPickerView `json:"slotPicker,omitempty"`
	ContinueURL  string          `json:"continueUrl,omitempty"`
}

type BookingSummaryView struct {
	Doctor DoctorView `json:"doctor"`
	Date   string     `json:"date"`
	Time   string     `json:"time"`
	Types  []string   `json:"types"`
}

type BookingResult struct {
	Appointment *models.Appointment `json:"appointment"`
	PaymentURL  string              `json:"paymentUrl"`
}

type PaymentView struct {
	Appointment     *models.Appointment `json:"appointment"`
	Doctor          DoctorView          `json:"doctor"`
	ConsultationFee int                 `json:"consultationFee"`
	ServiceFee      int                 `json:"serviceFee"`
	Total           int                 `json:"total"`
	Methods         []string            `json:"methods"`
}

type PaymentResult struct {
	TransactionID   string `json:"transactionId"`
	ConfirmationURL string `json:"confirmationUrl"`
}

type ConfirmationView struct {
	Appointment *models.Appointment `json:"appointment"`
	Doctor      DoctorView          `json:"doctor"`
}

// DeadEndView renders when a workflow step cannot recover its data, for
// example a payment link for an appointment the API no longer returns.
type DeadEndView struct {
	Message string `json:"message"`
	BackURL string `json:"backUrl"`
}
