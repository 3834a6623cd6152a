package engine

// Engine 持有搜索的全部可变状态：置换表和开局库。
// 置换表跟着 Engine 走，构造时建、ResetCache 清，
// 不做包级单例，独立对局/测试之间不会串状态。
type Engine struct {
	tt    *TransTable
	book  *Book
	nodes int64
}

type Option func(*Engine)

func WithTTCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.tt = NewTransTable(capacity)
		}
	}
}

func WithBook(book *Book) Option {
	return func(e *Engine) {
		e.book = book
	}
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{
		tt: NewTransTable(DefaultTTCapacity),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// TT 暴露给快照存取用
func (e *Engine) TT() *TransTable { return e.tt }

func (e *Engine) ResetCache() { e.tt.Clear() }
