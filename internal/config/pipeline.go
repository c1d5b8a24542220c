package config

import "sync"

// PipelineSettings holds the data thread's per-tick work budgets (§4.4).
type PipelineSettings struct {
	mu         sync.RWMutex
	loadCap    int
	compileCap int
}

var globalPipelineSettings = &PipelineSettings{
	loadCap:    32,
	compileCap: 16,
}

// GetLoadCap returns how many reload-queue items the data thread drains per tick.
func GetLoadCap() int {
	globalPipelineSettings.mu.RLock()
	defer globalPipelineSettings.mu.RUnlock()
	return globalPipelineSettings.loadCap
}

// SetLoadCap sets the per-tick reload budget.
func SetLoadCap(cap int) {
	globalPipelineSettings.mu.Lock()
	defer globalPipelineSettings.mu.Unlock()
	if cap < 1 {
		cap = 1
	}
	globalPipelineSettings.loadCap = cap
}

// GetCompileCap returns how many recompile-queue items the data thread
// drains per tick.
func GetCompileCap() int {
	globalPipelineSettings.mu.RLock()
	defer globalPipelineSettings.mu.RUnlock()
	return globalPipelineSettings.compileCap
}

// SetCompileCap sets the per-tick recompile budget.
func SetCompileCap(cap int) {
	globalPipelineSettings.mu.Lock()
	defer globalPipelineSettings.mu.Unlock()
	if cap < 1 {
		cap = 1
	}
	globalPipelineSettings.compileCap = cap
}
