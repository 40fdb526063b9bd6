package srv

import (
	"encoding/json"

	fireprotocol "github.com/holdno/firetower/protocol"
	"github.com/holdno/firetower/service/tower"

	"github.com/moodlingo/moodlingo/pkg/socket/firetower"
	"github.com/moodlingo/moodlingo/pkg/types"
)

type Tower struct {
	pusher *firetower.SelfPusher[PublishData]
	tower.Manager[PublishData]
}

type PublishData struct {
	Subject string            `json:"subject"`
	Version string            `json:"version"`
	Type    types.WsEventType `json:"type"`
	Data    any               `json:"data"`
}

// publishData 避免 MarshalJSON/UnmarshalJSON 自递归
type publishData PublishData

func (c *PublishData) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte(`""`), nil
	}
	return json.Marshal(publishData(*c))
}

func (c *PublishData) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == `""` {
		return nil
	}
	return json.Unmarshal(data, (*publishData)(c))
}

func SetupSocketSrv() (*Tower, error) {
	tower, pusher, err := firetower.SetupFiretower[PublishData]()
	if err != nil {
		return nil, err
	}

	return &Tower{
		pusher:  pusher,
		Manager: tower,
	}, nil
}

func ApplyTower() ApplyFunc {
	return func(s *Srv) {
		var err error
		if s.tower, err = SetupSocketSrv(); err != nil {
			panic(err)
		}
	}
}

func (t *Tower) NewMessage(imtopic string, _type fireprotocol.FireOperation, data PublishData) *fireprotocol.FireInfo[PublishData] {
	fire := t.NewFire(fireprotocol.SourceSystem, t.pusher)
	fire.Message.Topic = imtopic
	fire.Message.Type = _type
	fire.Message.Data = data
	return fire
}

// PublishEntryEvent 向用户的日记列表 topic 推送增删事件
func (t *Tower) PublishEntryEvent(event types.EntryEvent) error {
	var (
		subject string
		logic   types.WsEventType
		data    any
	)
	switch event.Op {
	case types.EntryCreated:
		subject = "entry_created"
		logic = types.WS_EVENT_ENTRY_CREATED
		data = event.Entry
	case types.EntryDeleted:
		subject = "entry_deleted"
		logic = types.WS_EVENT_ENTRY_DELETED
		data = map[string]string{"id": event.ID}
	default:
		subject = "entry_changed"
		logic = types.WS_EVENT_OTHERS
		data = map[string]string{"id": event.ID}
	}

	return t.publish(types.EntryListTopic(event.UserID), fireprotocol.PublishOperation, PublishData{
		Subject: subject,
		Version: "v1",
		Type:    logic,
		Data:    data,
	})
}

func (t *Tower) publish(imtopic string, _type fireprotocol.FireOperation, data PublishData) error {
	fire := t.NewMessage(imtopic, _type, data)
	return t.Publish(fire)
}
