package models

import "time"

// AnalyticsReport is the full response of one analytics run
type AnalyticsReport struct {
	ChannelID      string          `json:"channelId"`
	ChannelAvgVPD  float64         `json:"channelAvgVpd"`
	VideoCount     int             `json:"videoCount"`
	Summary        Summary         `json:"summary"`
	TopVideos      []VideoMetric   `json:"topVideos"`
	BottomVideos   []VideoMetric   `json:"bottomVideos"`
	TitleAnalysis  TitleAnalysis   `json:"titleAnalysis"`
	UploadCadence  UploadCadence   `json:"uploadCadence"`
	FormatClusters []FormatCluster `json:"formatClusters"`
	AISummary      AISummary       `json:"aiSummary"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// Summary holds the quartile comparison block of a report.
type Summary struct {
	AvgDurationTop       *float64             `json:"avgDurationTop"`
	AvgDurationBottom    *float64             `json:"avgDurationBottom"`
	AvgEngagementTop     *float64             `json:"avgEngagementTop"`
	AvgEngagementBottom  *float64             `json:"avgEngagementBottom"`
	TopTitleKeywords     []KeywordCount       `json:"topTitleKeywords"`
	VelocityDistribution VelocityDistribution `json:"velocityDistribution"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type VelocityDistribution struct {
	Exploding       int `json:"exploding"`
	Outperforming   int `json:"outperforming"`
	Baseline        int `json:"baseline"`
	Underperforming int `json:"underperforming"`
}

// TitleMetrics aggregates title features over a set of videos. Percentages are
// fractions in [0,1].
type TitleMetrics struct {
	PctWithNumbers    float64 `json:"pctWithNumbers"`
	PctWithQuestion   float64 `json:"pctWithQuestion"`
	PctWithComparison float64 `json:"pctWithComparison"`
	PctWithEmotional  float64 `json:"pctWithEmotional"`
	AvgLength         float64 `json:"avgLength"`
	AvgWordCount      float64 `json:"avgWordCount"`
}

type TitleAnalysis struct {
	TopQuartile    TitleMetrics `json:"topQuartile"`
	BottomQuartile TitleMetrics `json:"bottomQuartile"`
}

// UploadCadence describes publishing rhythm. All times are UTC.
type UploadCadence struct {
	AvgDaysBetweenUploads float64       `json:"avgDaysBetweenUploads"`
	UploadsPerWeek        float64       `json:"uploadsPerWeek"`
	BestDayOfWeek         string        `json:"bestDayOfWeek"`
	BestDayAvgVPD         float64       `json:"bestDayAvgVpd"`
	BestHourBucket        string        `json:"bestHourBucket"`
	BestHourAvgVPD        float64       `json:"bestHourAvgVpd"`
	ByDayOfWeek           []SlotAverage `json:"byDayOfWeek"`
	ByHourBucket          []SlotAverage `json:"byHourBucket"`
}

// SlotAverage is the mean views/day of the videos published in one time slot.
type SlotAverage struct {
	Slot   string  `json:"slot"`
	Videos int     `json:"videos"`
	AvgVPD float64 `json:"avgVpd"`
}

// FormatCluster groups videos whose titles match one named pattern. Clusters
// overlap: a video counts toward every pattern it matches.
type FormatCluster struct {
	Pattern           string   `json:"pattern"`
	Count             int      `json:"count"`
	AvgViewsPerDay    float64  `json:"avgViewsPerDay"`
	AvgEngagementRate *float64 `json:"avgEngagementRate"`
	Examples          []string `json:"examples"`
}

type AISummary struct {
	KeyObservations        []string `json:"keyObservations"`
	RecommendedExperiments []string `json:"recommendedExperiments"`
}
