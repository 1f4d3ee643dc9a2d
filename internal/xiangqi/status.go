package xiangqi

import "strings"

// Status 走子结果，可组合。没有 StatusOK 表示局面没有变化。
type Status uint8

const (
	StatusOK      Status = 1 << iota // 走子成功
	StatusEat                        // 吃子
	StatusCheck                      // 将军
	StatusDead                       // 王被吃 / 对局结束
	StatusSuicide                    // 送将，走子被拒绝
)

func (st Status) Has(flag Status) bool { return st&flag != 0 }

func (st Status) String() string {
	if st == 0 {
		return "rejected"
	}
	var parts []string
	for _, f := range []struct {
		flag Status
		name string
	}{
		{StatusOK, "ok"},
		{StatusEat, "eat"},
		{StatusCheck, "check"},
		{StatusDead, "dead"},
		{StatusSuicide, "suicide"},
	} {
		if st.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
