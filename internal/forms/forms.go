// Package forms relays site form submissions to the workflow-automation
// webhook as a flat JSON envelope.
package forms

import "errors"

var (
	// ErrUnknownFormType is returned for form types the site does not serve.
	ErrUnknownFormType = errors.New("unknown form type")
	// ErrInvalidSubmission is returned when the submitted fields fail to
	// decode or validate for the form type.
	ErrInvalidSubmission = errors.New("invalid form submission")
	// ErrRelayFailed is returned when the webhook rejects a submission or is
	// unreachable. Callers surface it as a generic retry prompt.
	ErrRelayFailed = errors.New("form relay failed")
)

// Form type identifiers, used by the webhook for routing.
const (
	TypeContact            = "contact"
	TypeJobApplication     = "job_application"
	TypeRecipeSubmission   = "recipe_submission"
	TypeWaitlist           = "waitlist"
	TypeLocationSuggestion = "location_suggestion"
	TypeProductReview      = "product_review"
	TypeRecipeRating       = "recipe_rating"
)

// Contact is the contact page form.
type Contact struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// JobApplication is the careers page application form.
type JobApplication struct {
	Name      string `json:"name"       validate:"required,max=200"`
	Email     string `json:"email"      validate:"required,email"`
	Role      string `json:"role"       validate:"required,max=200"`
	ResumeURL string `json:"resume_url" validate:"omitempty,url"`
	Message   string `json:"message"    validate:"max=5000"`
}

// RecipeSubmission is the community recipe submission form.
type RecipeSubmission struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Email       string `json:"email"       validate:"required,email"`
	RecipeTitle string `json:"recipe_title" validate:"required,max=200"`
	Recipe      string `json:"recipe"      validate:"required,max=10000"`
}

// Waitlist is the future-flavors waitlist form.
type Waitlist struct {
	Email  string `json:"email"  validate:"required,email"`
	Flavor string `json:"flavor" validate:"max=200"`
}

// LocationSuggestion is the store locator's suggest-a-location form.
type LocationSuggestion struct {
	StoreName string `json:"store_name" validate:"required,max=200"`
	City      string `json:"city"       validate:"required,max=200"`
	State     string `json:"state"      validate:"required,max=100"`
	Email     string `json:"email"      validate:"omitempty,email"`
}

// ProductReview is the write-a-review form.
type ProductReview struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Product string `json:"product" validate:"required,max=200"`
	Review  string `json:"review"  validate:"required,max=5000"`
}

// RecipeRating is the rate-this-recipe form.
type RecipeRating struct {
	RecipeID string `json:"recipe_id" validate:"required,max=100"`
	Rating   int    `json:"rating"    validate:"required,min=1,max=5"`
	Comment  string `json:"comment"   validate:"max=2000"`
}

// payloadFor returns a fresh destination value to decode the fields of the
// given form type into, or ErrUnknownFormType.
func payloadFor(formType string) (any, error) {
	switch formType {
	case TypeContact:
		return &Contact{}, nil
	case TypeJobApplication:
		return &JobApplication{}, nil
	case TypeRecipeSubmission:
		return &RecipeSubmission{}, nil
	case TypeWaitlist:
		return &Waitlist{}, nil
	case TypeLocationSuggestion:
		return &LocationSuggestion{}, nil
	case TypeProductReview:
		return &ProductReview{}, nil
	case TypeRecipeRating:
		return &RecipeRating{}, nil
	default:
		return nil, ErrUnknownFormType
	}
}
