// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// events from a watched file, one pending event per channel
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	channel  watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	process  *background.T
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channel watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("file %s error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin delivering events, ends on file removal or Stop
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.process = background.Start(background.Processes{w}, nil)
	return nil
}

// Stop - end event delivery and release the underlying watcher
func (w *fileWatcher) Stop() {
	w.process.Stop()
	w.watcher.Close()
}

// Run - event loop, as a background process
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	base := filepath.Base(w.filePath)
	for {
		select {
		case <-shutdown:
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				return
			}

			if filepath.Base(event.Name) != base {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}
		}
	}
}

func (w *fileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if w.isChannelFull(ch) {
		w.log.Debugf("event channel %s full, discard event", name)
		return
	}
	ch <- struct{}{}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name || event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// wait for either a change or a removal, false if the file is gone
func (w *fileWatcher) wait(interrupt <-chan os.Signal) (bool, error) {
	select {
	case <-w.channel.change:
		return true, nil
	case <-w.channel.remove:
		return false, nil
	case sig := <-interrupt:
		w.log.Infof("received signal: %v", sig)
		return false, fault.ErrInterrupted
	}
}
