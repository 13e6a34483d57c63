package enum

// CommandType 表示使用者對購物車發出的操作
type CommandType string

const (
	CommandTypeAdd    CommandType = "add"
	CommandTypeRemove CommandType = "remove"
)

func (t CommandType) Valid() bool {
	switch t {
	case CommandTypeAdd, CommandTypeRemove:
		return true
	}
	return false
}
