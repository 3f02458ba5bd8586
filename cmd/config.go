package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	CatalogBaseURL     string
	FulfillmentBaseURL string

	// DeliveryRetrySchedule is a cron expression with seconds, e.g. "*/30 * * * * *".
	DeliveryRetrySchedule string
}
