package predictor

// Features is one row of model input. Zero-valued optional fields are filled
// by WithDefaults.
type Features struct {
	StudiedCredits       int
	TotalClicks          int
	CodeModule           string
	CodePresentation     string
	Gender               string
	Region               string
	HighestEducation     string
	IMDBand              string
	AgeBand              string
	NumOfPrevAttempts    int
	Disability           string
	TotalVLEInteractions int
}

func NewFeatures(credits, clicks int) Features {
	return Features{StudiedCredits: credits, TotalClicks: clicks}.WithDefaults()
}

func (f Features) WithDefaults() Features {
	if f.CodeModule == "" {
		f.CodeModule = "AAA"
	}
	if f.CodePresentation == "" {
		f.CodePresentation = "2013J"
	}
	if f.Gender == "" {
		f.Gender = "M"
	}
	if f.Region == "" {
		f.Region = "East Anglian Region"
	}
	if f.HighestEducation == "" {
		f.HighestEducation = "HE Qualification"
	}
	if f.IMDBand == "" {
		f.IMDBand = "90-100%"
	}
	if f.AgeBand == "" {
		f.AgeBand = "0-35"
	}
	if f.Disability == "" {
		f.Disability = "N"
	}
	if f.TotalVLEInteractions == 0 {
		f.TotalVLEInteractions = f.TotalClicks
	}
	return f
}

func (f Features) numeric() map[string]float64 {
	return map[string]float64{
		"studied_credits":        float64(f.StudiedCredits),
		"total_clicks":           float64(f.TotalClicks),
		"num_of_prev_attempts":   float64(f.NumOfPrevAttempts),
		"total_vle_interactions": float64(f.TotalVLEInteractions),
	}
}

func (f Features) categorical() map[string]string {
	return map[string]string{
		"code_module":       f.CodeModule,
		"code_presentation": f.CodePresentation,
		"gender":            f.Gender,
		"region":            f.Region,
		"highest_education": f.HighestEducation,
		"imd_band":          f.IMDBand,
		"age_band":          f.AgeBand,
		"disability":        f.Disability,
	}
}
