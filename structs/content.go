package structs

// Content records flattened from the commerce platform's metaobject store.
// Each loader in services/ maps one metaobject type onto one of these.

type FAQItem struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Anchor     string   `json:"anchor"`
	Answer     string   `json:"answer"` // rendered HTML
	Categories []string `json:"categories"`
}

type GalleryImage struct {
	ID      string   `json:"id"`
	Small   string   `json:"small"`
	Full    string   `json:"full"`
	AltText string   `json:"altText"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Tags    []string `json:"tags"`
}

type GalleryResult struct {
	Images []GalleryImage `json:"images"`
	Tags   []string       `json:"tags"`
}

type MegamenuItem struct {
	ID              string   `json:"id"`
	Handle          string   `json:"handle"`
	MenuType        string   `json:"menuType"`
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	BackgroundColor string   `json:"backgroundColor"`
	ButtonColor     string   `json:"buttonColor"`
	ButtonTextColor string   `json:"buttonTextColor"`
	ButtonText      string   `json:"buttonText"`
	Image           string   `json:"image,omitempty"`
	Sticker         string   `json:"sticker,omitempty"`
	ListItems       []string `json:"listItems"`
}

type TrustpilotHeading struct {
	RatingName      string `json:"ratingName"`
	AmountOfStars   string `json:"amountOfStars"`
	AmountOfReviews string `json:"amountOfReviews"`
	Heading         string `json:"heading"`
	ButtonLink      string `json:"buttonLink"`
	ButtonText      string `json:"buttonText"`
}

type TrustpilotReview struct {
	DisplayName   string `json:"displayName"`
	ExperiencedAt string `json:"experiencedAt"`
	Stars         int    `json:"stars"`
	Title         string `json:"title"`
	Text          string `json:"text"`
}

type TrustpilotResult struct {
	Heading TrustpilotHeading  `json:"heading"`
	Reviews []TrustpilotReview `json:"reviews"`
}

// LightboxFeature is one row of the system comparison table.
type LightboxFeature struct {
	Feature string `json:"feature"`
	Vista   string `json:"vista"`
	Alto    string `json:"alto"`
	Order   int    `json:"order"`
}

type ClosetMedia struct {
	Type         string `json:"type"` // image or video
	URL          string `json:"url"`
	AltText      string `json:"altText,omitempty"`
	PreviewImage string `json:"previewImage,omitempty"`
}

type CustomerCloset struct {
	ID                 string       `json:"id"`
	CustomerName       string       `json:"customerName"`
	ClosetMeasurements string       `json:"closetMeasurements"`
	TotalCost          string       `json:"totalCost"`
	TurnaroundTime     string       `json:"turnaroundTime"`
	YoutubeURL         string       `json:"youtubeUrl,omitempty"`
	Media              *ClosetMedia `json:"media,omitempty"`
}

// ContractorInquiry is a lead submitted from the contractor landing page.
type ContractorInquiry struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" validate:"omitempty,max=150"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}
