package engine

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
)

// 置换表快照：gob 套一层 zstd 落盘，本地服务和自对弈重启时热启动用。
// 快照容量和当前表不一致就拒绝载入，调用方记条日志继续空表跑。

type ttSnapshot struct {
	Capacity int
	Entries  []Entry // 旧 → 新，重放后 LRU 顺序不变
}

func (t *TransTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	snap := ttSnapshot{
		Capacity: t.capacity,
		Entries:  make([]Entry, 0, t.order.Len()),
	}
	for el := t.order.Back(); el != nil; el = el.Prev() {
		snap.Entries = append(snap.Entries, el.Value.(*ttNode).entry)
	}

	if err := gob.NewEncoder(zw).Encode(&snap); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func (t *TransTable) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer zr.Close()

	var snap ttSnapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return fmt.Errorf("decode tt snapshot %s: %w", path, err)
	}
	if snap.Capacity != t.capacity {
		return fmt.Errorf("tt snapshot capacity %d does not match table capacity %d", snap.Capacity, t.capacity)
	}

	t.Clear()
	for _, entry := range snap.Entries {
		t.Put(entry.Key, entry)
	}
	return nil
}
