package service

import "time"

// Export for testing
var ScoreGames = scoreGames
var CleanTags = cleanTags
var NameSlug = nameSlug
var ImageContentType = imageContentType
var ParseAdded = parseAdded

// SetLibraryClockForTest replaces the clock used for cache expiry.
func SetLibraryClockForTest(svc LibraryService, now func() time.Time) {
	if impl, ok := svc.(*libraryService); ok {
		impl.now = now
	}
}

// SetAuthClockForTest replaces the clock used to issue and check tokens.
func SetAuthClockForTest(svc AuthService, now func() time.Time) {
	if impl, ok := svc.(*authService); ok {
		impl.now = now
	}
}
