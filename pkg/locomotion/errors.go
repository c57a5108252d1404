package locomotion

import "errors"

// 构造控制器时的依赖缺失错误
var (
	ErrNilTransform  = errors.New("locomotion: transform is nil")
	ErrNilPathfinder = errors.New("locomotion: pathfinder is nil")
	ErrNilAnimator   = errors.New("locomotion: animator is nil")
	ErrNilScheduler  = errors.New("locomotion: scheduler is nil")
)
