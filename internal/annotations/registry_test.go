package annotations

import "testing"

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(StatusAnnotation, StatusAnnotationSchema); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !r.IsRegistered(StatusAnnotation) {
		t.Error("expected status annotation to be registered")
	}

	schema, err := r.GetSchema(StatusAnnotation)
	if err != nil {
		t.Fatalf("get schema failed: %v", err)
	}
	if schema.Kind != StatusAnnotation {
		t.Errorf("expected kind %v, got %v", StatusAnnotation, schema.Kind)
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(RouteAnnotation, RouteAnnotationSchema); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := r.Register(RouteAnnotation, RouteAnnotationSchema); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistryKindMismatch(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(ErrorAnnotation, StatusAnnotationSchema); err == nil {
		t.Error("expected kind mismatch to fail")
	}
}

func TestRegistryUnknownKind(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetSchema(OverrideAnnotation); err == nil {
		t.Error("expected unknown kind lookup to fail")
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	r := DefaultRegistry()

	for _, kind := range []Kind{ErrorAnnotation, StatusAnnotation, RouteAnnotation, OverrideAnnotation} {
		if !r.IsRegistered(kind) {
			t.Errorf("expected builtin kind %s to be registered", kind)
		}
	}
	if len(r.ListKinds()) != 4 {
		t.Errorf("expected 4 builtin kinds, got %d", len(r.ListKinds()))
	}
}
