package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_NOT_FOUND       = "error.notfound"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_UNAUTHORIZED    = "error.unauthorized"
	ERROR_FORBIDDEN       = "error.forbidden"

	ERROR_STORE_UNAVAILABLE = "error.store.unavailable"
	ERROR_FETCH_FAILED      = "error.store.fetch_failed"
	ERROR_DELETE_FAILED     = "error.store.delete_failed"

	ERROR_EMPTY_TITLE   = "error.entry.empty_title"
	ERROR_EMPTY_CONTENT = "error.entry.empty_content"

	ERROR_AI_UNCONFIGURED = "error.ai.unconfigured"
	ERROR_AI_NETWORK      = "error.ai.network"
	ERROR_AI_UPSTREAM     = "error.ai.upstream"

	ERROR_GATE_NOT_PENDING = "error.gate.not_pending"
	ERROR_GATE_BUSY        = "error.gate.busy"

	ERROR_DRAFT_NOT_FOUND = "error.draft.notfound"
)
