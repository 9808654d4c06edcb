// Package timezone holds the application timezone used for every timestamp the
// booking workflow writes (payment dates, processed_at, OTP issue times).
//
// Call Init once at startup with the APP_TIMEZONE value:
//
//	timezone.Init(cfg.App.Timezone)
//	now := timezone.Now()
//
// Until Init is called, or when the name cannot be loaded, every helper works in UTC.
// Use standard IANA timezone database names such as "Asia/Kolkata" or "UTC".
package timezone
