package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TallyEntry 一支队伍的累计胜场
type TallyEntry struct {
	Team string
	Wins int
}

// Tally 各队累计胜场
//
// 遍历顺序为队伍首次获胜的顺序，序列化为 JSON 对象后顺序保持不变，
// 例如 {"red":2,"blue":1}。
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally 创建空的胜场统计
func NewTally() *Tally {
	return &Tally{
		order:  make([]string, 0),
		counts: make(map[string]int),
	}
}

// Increment 为队伍增加一场胜利，返回新的胜场数
func (t *Tally) Increment(team string) int {
	if _, ok := t.counts[team]; !ok {
		t.order = append(t.order, team)
	}
	t.counts[team]++
	return t.counts[team]
}

// Wins 返回队伍的胜场数，未获胜过的队伍返回 0
func (t *Tally) Wins(team string) int {
	return t.counts[team]
}

// Len 返回获胜过的队伍数量
func (t *Tally) Len() int {
	return len(t.order)
}

// Entries 按首次获胜顺序返回所有记录
func (t *Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.order))
	for _, team := range t.order {
		entries = append(entries, TallyEntry{Team: team, Wins: t.counts[team]})
	}
	return entries
}

// Clone 返回副本
func (t *Tally) Clone() *Tally {
	c := NewTally()
	for _, e := range t.Entries() {
		c.order = append(c.order, e.Team)
		c.counts[e.Team] = e.Wins
	}
	return c
}

// MarshalJSON 按首次获胜顺序输出 JSON 对象
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, team := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(team)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", t.counts[team])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON 解析 JSON 对象并保留键的顺序
// 胜场必须是非负整数；JSON null 解析为空统计
func (t *Tally) UnmarshalJSON(data []byte) error {
	parsed := NewTally()

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = *parsed
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tally must be a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		team, ok := tok.(string)
		if !ok {
			return fmt.Errorf("tally key must be a string")
		}

		var wins json.Number
		if err := dec.Decode(&wins); err != nil {
			return fmt.Errorf("invalid win count for %q: %w", team, err)
		}
		n, err := wins.Int64()
		if err != nil || n < 0 {
			return fmt.Errorf("invalid win count for %q: %s", team, wins)
		}

		if _, seen := parsed.counts[team]; !seen {
			parsed.order = append(parsed.order, team)
		}
		parsed.counts[team] = int(n)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = *parsed
	return nil
}
