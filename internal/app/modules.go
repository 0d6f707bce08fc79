package app

import (
	"github.com/vk/buildrig/internal/engine"
	"github.com/vk/buildrig/modules/envprobe"
	"github.com/vk/buildrig/modules/execcmd"
)

// coreModules is the definitive list of all runner modules compiled into
// the buildrig binary.
var coreModules = []engine.Module{
	&envprobe.Module{},
	&execcmd.Module{},
}
