package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// entry 存储一个实体及其删除标记
type entry[T any] struct {
	id     EntityID
	data   T
	marked bool
}

// EntityManager 以稠密切片管理同一类实体
//
// 实体按创建顺序存放，删除分两步：
//   - DestroyEntity 只做标记，被标记的实体立即对 Each/Len 不可见
//   - RemoveMarkedEntities 原地压缩切片，保留剩余实体的相对顺序
//
// 遍历过程中删除实体不会影响遍历本身。
type EntityManager[T any] struct {
	nextID   uint64
	entities []entry[T]
	// 已标记但尚未清理的实体数量
	marked int
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:   1, // ID从1开始,0保留为无效ID
		entities: make([]entry[T], 0),
	}
}

// CreateEntity 在序列末尾创建新实体并返回唯一ID
func (em *EntityManager[T]) CreateEntity(data T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities = append(em.entities, entry[T]{id: id, data: data})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 返回 false 表示实体不存在或已被标记
func (em *EntityManager[T]) DestroyEntity(id EntityID) bool {
	for i := range em.entities {
		e := &em.entities[i]
		if e.id != id {
			continue
		}
		if e.marked {
			return false
		}
		e.marked = true
		em.marked++
		return true
	}
	return false
}

// GetComponent 获取实体数据的指针
func (em *EntityManager[T]) GetComponent(id EntityID) (*T, bool) {
	for i := range em.entities {
		e := &em.entities[i]
		if e.id == id && !e.marked {
			return &e.data, true
		}
	}
	return nil, false
}

// Each 按创建顺序遍历所有未标记的实体
// 回调中可以调用 DestroyEntity，被标记的实体在本次遍历的后续位置会被跳过
// 回调返回 false 时停止遍历
func (em *EntityManager[T]) Each(fn func(id EntityID, data *T) bool) {
	// 遍历期间新建的实体不参与本次遍历
	n := len(em.entities)
	for i := 0; i < n; i++ {
		e := &em.entities[i]
		if e.marked {
			continue
		}
		if !fn(e.id, &e.data) {
			return
		}
	}
}

// Len 返回未标记的实体数量
func (em *EntityManager[T]) Len() int {
	return len(em.entities) - em.marked
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 原地压缩，保留剩余实体的相对顺序
func (em *EntityManager[T]) RemoveMarkedEntities() {
	if em.marked == 0 {
		return
	}
	kept := em.entities[:0]
	for _, e := range em.entities {
		if !e.marked {
			kept = append(kept, e)
		}
	}
	// 清空尾部，避免持有已删除实体的数据
	var zero entry[T]
	for i := len(kept); i < len(em.entities); i++ {
		em.entities[i] = zero
	}
	em.entities = kept
	em.marked = 0
}
