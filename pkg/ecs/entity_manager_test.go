package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Z float64
}

type testTargetComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始,0保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("expected 2 entities, got %d", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 1, Z: 2})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 1 || pos.Z != 2 {
		t.Errorf("Component data mismatch, expected (1, 2), got (%f, %f)", pos.X, pos.Z)
	}

	if _, ok := GetComponent[*testTargetComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 99); ok {
		t.Error("unknown entity should not have components")
	}
}

func TestAddComponentReplacesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 1})
	em.AddComponent(id, &testPositionComponent{X: 5})

	pos, _ := GetComponent[*testPositionComponent](em, id)
	if pos.X != 5 {
		t.Errorf("expected replaced component X=5, got %f", pos.X)
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponentOf[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})
	if !HasComponentOf[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})

	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !HasComponentOf[*testPositionComponent](em, id1) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if HasComponentOf[*testPositionComponent](em, id1) {
		t.Error("Entity should be removed after cleanup")
	}
	if !HasComponentOf[*testPositionComponent](em, id2) {
		t.Error("id2 should still exist")
	}
	if em.Count() != 1 {
		t.Errorf("expected 1 entity, got %d", em.Count())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testTargetComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTargetComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testTargetComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("expected [%d], got %v", id1, both)
	}

	// 结果按 ID 升序
	targets := GetEntitiesWith1[*testTargetComponent](em)
	if len(targets) != 2 || targets[0] != id1 || targets[1] != id3 {
		t.Errorf("expected [%d %d], got %v", id1, id3, targets)
	}
}
