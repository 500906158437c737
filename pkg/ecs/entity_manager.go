// Package ecs 提供按创建顺序遍历的实体存储
//
// 实体删除分两步：DestroyEntity 只做标记，被标记的实体立即对查询不可见；
// RemoveMarkedEntities 在帧末统一回收。遍历顺序始终是创建顺序，保证模拟可复现。
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 保留的无效 ID
const InvalidEntity EntityID = 0

// EntityManager 管理一个场景内的所有实体
type EntityManager[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体ID（包含已标记但未回收的）
	order    []EntityID
	entities map[EntityID]T
	// 待删除的实体ID
	marked            map[EntityID]struct{}
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0, 64),
		entities:          make(map[EntityID]T),
		marked:            make(map[EntityID]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 存入新实体并返回唯一ID
func (em *EntityManager[T]) CreateEntity(v T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.order = append(em.order, id)
	em.entities[id] = v
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)，重复标记无副作用
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	if _, ok := em.entities[id]; !ok {
		return
	}
	if _, ok := em.marked[id]; ok {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager[T]) IsAlive(id EntityID) bool {
	if _, ok := em.entities[id]; !ok {
		return false
	}
	_, dead := em.marked[id]
	return !dead
}

// Get 返回存活实体
func (em *EntityManager[T]) Get(id EntityID) (T, bool) {
	if !em.IsAlive(id) {
		var zero T
		return zero, false
	}
	return em.entities[id], true
}

// Entities 返回所有存活实体的ID快照，按创建顺序排列
// 遍历期间创建或删除实体不会影响返回的切片
func (em *EntityManager[T]) Entities() []EntityID {
	result := make([]EntityID, 0, len(em.order))
	for _, id := range em.order {
		if _, dead := em.marked[id]; !dead {
			result = append(result, id)
		}
	}
	return result
}

// Each 按创建顺序遍历存活实体
// 回调中新建的实体本轮不会被访问，回调中被标记的实体随即跳过
func (em *EntityManager[T]) Each(fn func(id EntityID, v T)) {
	n := len(em.order)
	for i := 0; i < n; i++ {
		id := em.order[i]
		if _, dead := em.marked[id]; dead {
			continue
		}
		fn(id, em.entities[id])
	}
}

// Filter 按创建顺序返回满足条件的存活实体
func (em *EntityManager[T]) Filter(pred func(v T) bool) []T {
	result := make([]T, 0)
	em.Each(func(_ EntityID, v T) {
		if pred(v) {
			result = append(result, v)
		}
	})
	return result
}

// Count 返回存活实体数量
func (em *EntityManager[T]) Count() int {
	return len(em.entities) - len(em.marked)
}

// PendingCount 返回已标记但尚未回收的实体数量
func (em *EntityManager[T]) PendingCount() int {
	return len(em.entitiesToDestroy)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager[T]) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, dead := em.marked[id]; !dead {
			kept = append(kept, id)
		}
	}
	em.order = kept
	clear(em.marked)
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Clear 标记所有存活实体待删除
func (em *EntityManager[T]) Clear() {
	for _, id := range em.order {
		em.DestroyEntity(id)
	}
}
