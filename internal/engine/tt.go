package engine

import (
	"container/list"

	"tiaoqi/internal/tiaoqi"
)

type Flag uint8

const (
	FlagExact Flag = iota
	FlagLowerBound
	FlagUpperBound
)

// Entry 是一次搜索结果：分值从“当时的走子方”视角看
type Entry struct {
	Key      uint64
	Score    int
	Depth    int
	Flag     Flag
	BestMove tiaoqi.Move
}

// TransTable：固定容量的置换表，满了按 LRU 淘汰。
// 哈希碰撞不处理，存进去什么信回什么——这是被接受的近似。
// 单线程搜索不加锁；并发扩展必须先给 Get/Put 串行化。
type TransTable struct {
	capacity int
	order    *list.List // Front = 最近访问
	items    map[uint64]*list.Element
}

type ttNode struct {
	key   uint64
	entry Entry
}

const DefaultTTCapacity = 1 << 22

func NewTransTable(capacity int) *TransTable {
	if capacity <= 0 {
		capacity = DefaultTTCapacity
	}
	return &TransTable{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[uint64]*list.Element, 1<<16),
	}
}

func (t *TransTable) Exists(hash uint64) bool {
	_, ok := t.items[hash]
	return ok
}

// Get 未命中时返回零值条目，调用方必须先用 Exists 把关
func (t *TransTable) Get(hash uint64) Entry {
	el, ok := t.items[hash]
	if !ok {
		return Entry{}
	}
	t.order.MoveToFront(el)
	return el.Value.(*ttNode).entry
}

// Put 覆盖同键旧值（last-write-wins），并把条目记为最近访问
func (t *TransTable) Put(hash uint64, entry Entry) {
	if el, ok := t.items[hash]; ok {
		el.Value.(*ttNode).entry = entry
		t.order.MoveToFront(el)
		return
	}
	if t.order.Len() >= t.capacity {
		oldest := t.order.Back()
		if oldest != nil {
			t.order.Remove(oldest)
			delete(t.items, oldest.Value.(*ttNode).key)
		}
	}
	t.items[hash] = t.order.PushFront(&ttNode{key: hash, entry: entry})
}

func (t *TransTable) Len() int { return t.order.Len() }

func (t *TransTable) Capacity() int { return t.capacity }

// Clear 清空全部条目，容量不变。独立对局/测试之间用它隔离状态。
func (t *TransTable) Clear() {
	t.order.Init()
	t.items = make(map[uint64]*list.Element, 1<<16)
}
