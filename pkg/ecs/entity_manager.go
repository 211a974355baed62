// Package ecs 提供精灵查看器使用的实体-组件存储
// 组件以动态类型为键,每个实体每种类型最多持有一个组件
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符,0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	pending []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 在 RemoveMarkedEntities 调用之前实体仍可查询
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending = append(em.pending, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pending {
		delete(em.components, id)
	}
	em.pending = em.pending[:0]
}

// Exists 检查实体是否存在
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// AddComponent 为实体添加组件,同类型组件会被替换
// 实体不存在时不做任何操作
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if comps, ok := em.components[id]; ok {
		comps[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if comps, ok := em.components[id]; ok {
		delete(comps, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comps, ok := em.components[id]
	if !ok {
		return nil, false
	}
	comp, ok := comps[componentType]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回: []EntityID - 按ID升序排列的实体列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, comps := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, ok := comps[ct]; !ok {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Get 是 GetComponent 的泛型版本:
//
//	anim, ok := ecs.Get[*components.AsepriteAnimationComponent](em, id)
func Get[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// TypeOf 返回类型 T 对应的组件键
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
