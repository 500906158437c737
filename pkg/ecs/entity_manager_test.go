package ecs

import "testing"

// 测试实体类型定义
type testEntity struct {
	Name string
	X, Y float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id1 := em.CreateEntity(&testEntity{Name: "a"})
	id2 := em.CreateEntity(&testEntity{Name: "b"})

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestGetEntity(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id := em.CreateEntity(&testEntity{X: 100, Y: 200})

	e, found := em.Get(id)
	if !found {
		t.Fatal("Entity should be found")
	}
	if e.X != 100 || e.Y != 200 {
		t.Errorf("Entity data mismatch, expected (100, 200), got (%f, %f)", e.X, e.Y)
	}

	if _, found := em.Get(InvalidEntity); found {
		t.Error("Invalid ID should not be found")
	}
}

func TestDestroyEntityHidesImmediately(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id := em.CreateEntity(&testEntity{})

	// 标记删除
	em.DestroyEntity(id)

	// 标记后立即不可见
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if _, found := em.Get(id); found {
		t.Error("Marked entity should not be returned")
	}
	if len(em.Entities()) != 0 {
		t.Error("Marked entity should not be listed")
	}
	if em.PendingCount() != 1 {
		t.Errorf("Expected 1 pending removal, got %d", em.PendingCount())
	}

	// 执行清理
	em.RemoveMarkedEntities()
	if em.PendingCount() != 0 {
		t.Error("Pending list should be empty after cleanup")
	}
	if em.Count() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.Count())
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id := em.CreateEntity(&testEntity{})
	em.CreateEntity(&testEntity{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if em.PendingCount() != 1 {
		t.Errorf("Double destroy should be recorded once, got %d", em.PendingCount())
	}
	if em.Count() != 1 {
		t.Errorf("Expected 1 live entity, got %d", em.Count())
	}
	em.RemoveMarkedEntities()
	if em.Count() != 1 {
		t.Errorf("Expected 1 live entity after cleanup, got %d", em.Count())
	}
}

func TestEntitiesKeepCreationOrder(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	ids := make([]EntityID, 0, 10)
	for i := 0; i < 10; i++ {
		ids = append(ids, em.CreateEntity(&testEntity{X: float64(i)}))
	}

	em.DestroyEntity(ids[3])
	em.DestroyEntity(ids[7])
	em.RemoveMarkedEntities()
	extra := em.CreateEntity(&testEntity{X: 99})

	got := em.Entities()
	want := []EntityID{ids[0], ids[1], ids[2], ids[4], ids[5], ids[6], ids[8], ids[9], extra}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestEachSkipsEntitiesMarkedDuringIteration(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	first := em.CreateEntity(&testEntity{Name: "first"})
	second := em.CreateEntity(&testEntity{Name: "second"})
	_ = first

	visited := make([]string, 0)
	em.Each(func(id EntityID, e *testEntity) {
		visited = append(visited, e.Name)
		if e.Name == "first" {
			em.DestroyEntity(second)
			em.CreateEntity(&testEntity{Name: "spawned"})
		}
	})

	if len(visited) != 1 || visited[0] != "first" {
		t.Errorf("Expected only first to be visited, got %v", visited)
	}
	if em.Count() != 2 {
		t.Errorf("Expected first and spawned to remain, got %d", em.Count())
	}
}

func TestFilter(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	for i := 0; i < 5; i++ {
		em.CreateEntity(&testEntity{X: float64(i)})
	}

	even := em.Filter(func(e *testEntity) bool { return int(e.X)%2 == 0 })
	if len(even) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(even))
	}
	if even[0].X != 0 || even[1].X != 2 || even[2].X != 4 {
		t.Error("Filter should keep creation order")
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	for i := 0; i < 3; i++ {
		em.CreateEntity(&testEntity{})
	}
	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Expected no live entities after Clear, got %d", em.Count())
	}
	em.RemoveMarkedEntities()
	if len(em.Entities()) != 0 {
		t.Error("Entities should be empty after cleanup")
	}
}
