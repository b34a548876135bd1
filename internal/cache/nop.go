package cache

import (
	"context"

	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
)

// NopTutorCache всегда промахивается; используется без REDIS_ADDR
type NopTutorCache struct{}

func (NopTutorCache) GetTutor(context.Context, int64) (*model.Tutor, bool, error) {
	return nil, false, nil
}

func (NopTutorCache) SetTutor(context.Context, *model.Tutor) error { return nil }

func (NopTutorCache) GetTutors(context.Context) ([]*model.Tutor, bool, error) {
	return nil, false, nil
}

func (NopTutorCache) SetTutors(context.Context, []*model.Tutor) error { return nil }

func (NopTutorCache) Invalidate(context.Context, int64) error { return nil }
