package types

const (
	NO_PAGINATION = 0
)

type WsEventType int32

const (
	WS_EVENT_UNKNOWN       WsEventType = 0
	WS_EVENT_ENTRY_CREATED WsEventType = 1 // 新日记已保存
	WS_EVENT_ENTRY_DELETED WsEventType = 2 // 日记已删除
	WS_EVENT_OTHERS        WsEventType = 400
)

const (
	LANGUAGE_EN_KEY = "en"
	LANGUAGE_CN_KEY = "zh-CN"
)

// EntryListTopic is the per-user websocket topic the live journal list
// subscribes to.
func EntryListTopic(userID string) string {
	return "/journal/list/" + userID
}
