package handler

// Export for testing
type ProxyErrorResponse = proxyErrorResponse
type ChatErrorResponse = chatErrorResponse
type GamesSearchResponse = gamesSearchResponse
type TagsResponse = tagsResponse
type DetailResponse = detailResponse
type SiteResponse = siteResponse
type IdeaResponse = ideaResponse
type SyncTogglesResponse = syncTogglesResponse
type SyncDocumentResponse = syncDocumentResponse
type LoginResponse = loginResponse
type ProxyUsageResponse = proxyUsageResponse

var NewProxyHandlerHelper = NewProxyHandler
var NewAIHandlerHelper = NewAIHandler
var NewGamesHandlerHelper = NewGamesHandler
var NewSiteHandlerHelper = NewSiteHandler
var NewFeedbackHandlerHelper = NewFeedbackHandler
var NewSyncHandlerHelper = NewSyncHandler
var NewAdminHandlerHelper = NewAdminHandler

var WriteServiceError = writeServiceError
