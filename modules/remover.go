package modules

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/kv"
	"github.com/eisenwinter/apicportal/metrics"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNothingStaged is returned if there is no staged deletion for the user, it either
// never existed or timed out
var ErrNothingStaged = errors.New("no modules staged for deletion")

// ErrInvalidModuleName is returned for names that are not a single directory
var ErrInvalidModuleName = errors.New("invalid module name")

// StagingCollection is the key value collection holding staged deletions
const StagingCollection = "custom_modules_delete"

const defaultStagingExpiry = time.Hour

// Dispatcher dispatches events
type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event)
}

// Remover stages and deletes custom module directories below <site-path>/modules
type Remover struct {
	log        *zap.Logger
	fs         afero.Fs
	root       string
	staging    kv.ExpirableStore
	ttl        time.Duration
	dispatcher Dispatcher
}

// NewRemover returns a remover working on fs
func NewRemover(log *zap.Logger,
	fs afero.Fs,
	sitePath string,
	staging kv.ExpirableStore,
	ttl time.Duration,
	dispatcher Dispatcher) *Remover {
	if ttl <= 0 {
		ttl = defaultStagingExpiry
	}
	return &Remover{
		log:        log.Named("module_remover"),
		fs:         fs,
		root:       filepath.Join(sitePath, "modules"),
		staging:    staging,
		ttl:        ttl,
		dispatcher: dispatcher,
	}
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func stagingKey(userID int) string {
	return strconv.Itoa(userID)
}

// Installed lists the custom module directories
func (r *Remover) Installed() ([]string, error) {
	exists, err := afero.DirExists(r.fs, r.root)
	if err != nil || !exists {
		return []string{}, err
	}
	infos, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			res = append(res, info.Name())
		}
	}
	sort.Strings(res)
	return res, nil
}

// Stage keeps the modules selected by the user until the deletion is confirmed
func (r *Remover) Stage(ctx context.Context, userID int, modules []string) error {
	if len(modules) == 0 {
		return ErrNothingStaged
	}
	for _, m := range modules {
		if !validName(m) {
			return ErrInvalidModuleName
		}
	}
	data, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	if err := r.staging.SetWithExpire(ctx, stagingKey(userID), data, r.ttl); err != nil {
		return err
	}
	r.log.Info("modules staged for deletion", zap.Int("user_id", userID), zap.Strings("modules", modules))
	return nil
}

// Staged returns the modules staged by the user
func (r *Remover) Staged(ctx context.Context, userID int) ([]string, error) {
	data, err := r.staging.Get(ctx, stagingKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNothingStaged
		}
		return nil, err
	}
	var modules []string
	if err := json.Unmarshal(data, &modules); err != nil {
		r.log.Warn("staged module list is corrupt", zap.Int("user_id", userID), zap.Error(err))
		return nil, ErrNothingStaged
	}
	if len(modules) == 0 {
		return nil, ErrNothingStaged
	}
	return modules, nil
}

// Confirm deletes the staged modules of the user. Either every directory is deleted or,
// if any of them is missing, none at all
func (r *Remover) Confirm(ctx context.Context, userID int) (bool, error) {
	modules, err := r.Staged(ctx, userID)
	if err != nil {
		return false, err
	}
	if err := r.staging.Delete(ctx, stagingKey(userID)); err != nil {
		r.log.Warn("could not clear staged modules", zap.Int("user_id", userID), zap.Error(err))
	}

	ok := r.deleteModules(modules)
	metrics.RecordModuleRemoval(ok)
	if ok {
		r.dispatcher.Dispatch(ctx, &event.CustomModulesDeleted{
			UserID:  userID,
			Modules: modules,
		})
	}
	return ok, nil
}

func (r *Remover) deleteModules(modules []string) bool {
	paths := make([]string, 0, len(modules))
	missing := false
	for _, m := range modules {
		path := filepath.Join(r.root, m)
		r.log.Debug("delete modules: checking existence", sanitize.UserInputString("path", path))
		exists, err := afero.DirExists(r.fs, path)
		if !validName(m) || err != nil || !exists {
			r.log.Error("not a directory, cancelling", sanitize.UserInputString("path", path))
			missing = true
			continue
		}
		paths = append(paths, path)
	}
	if missing {
		r.log.Error("errors found while checking module directories to delete, nothing was deleted")
		return false
	}
	if len(paths) == 0 {
		r.log.Error("empty list of paths to delete")
		return false
	}
	success := true
	for _, path := range paths {
		r.log.Debug("delete modules: recursively deleting", sanitize.UserInputString("path", path))
		if err := r.fs.RemoveAll(path); err != nil {
			r.log.Error("could not delete module directory", sanitize.UserInputString("path", path), zap.Error(err))
			success = false
		}
	}
	return success
}
