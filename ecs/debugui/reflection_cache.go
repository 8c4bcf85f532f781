package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field of a component type.
type FieldInfo struct {
	Name      string
	Index     int
	Kind      reflect.Kind
	IsPointer bool
}

// reflectionCache memoizes per-type field metadata so the inspector
// does not re-walk struct types every frame.
type reflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

var globalReflectionCache = &reflectionCache{
	fields: make(map[reflect.Type][]FieldInfo),
}

// Fields returns the exported fields of a struct type, cached after
// the first call.
func (rc *reflectionCache) Fields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fields[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	var infos []FieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		kind := f.Type.Kind()
		isPtr := kind == reflect.Ptr
		if isPtr {
			kind = f.Type.Elem().Kind()
		}
		infos = append(infos, FieldInfo{
			Name:      f.Name,
			Index:     i,
			Kind:      kind,
			IsPointer: isPtr,
		})
	}

	rc.mu.Lock()
	rc.fields[t] = infos
	rc.mu.Unlock()
	return infos
}
