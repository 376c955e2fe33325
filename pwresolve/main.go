// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hlandau/degoutils/passwd"
	"k8s.io/klog/v2"
)

var (
	flUser       string
	flGroup      string
	flPasswdFile string
	flGroupFile  string
)

var (
	version string = "unknown" // populated at link time
	commit  string = "unknown" // populated at link time
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()
	flag.StringVar(&flUser, "user", "", "user name or numeric uid to resolve")
	flag.StringVar(&flGroup, "group", "", "group name or numeric gid to resolve")
	flag.StringVar(&flPasswdFile, "passwd_file", "", "[debug-only] read users from this passwd(5) file instead of the system database; groups are unaffected")
	flag.StringVar(&flGroupFile, "group_file", "", "[debug-only] read groups from this group(5) file instead of the system database; users are unaffected")
	flag.Set("logtostderr", "true")
	flag.Parse()

	klog.V(1).Infof("starting pwresolve version=%s commit=%s pid=%d", version, commit, os.Getpid())

	if flUser == "" && flGroup == "" {
		klog.Exit("specify -user and/or -group, e.g: 'pwresolve -user nobody -group nogroup'")
	}

	if flPasswdFile != "" || flGroupFile != "" {
		klog.V(3).Infof("using files passwd=%q group=%q", flPasswdFile, flGroupFile)
		passwd.Default = newResolver(flPasswdFile, flGroupFile)
	}

	if err := run(os.Stdout, flUser, flGroup); err != nil {
		klog.Exitf("%v", err)
	}
}

// splitResolver sends user and group lookups to separate backends.
type splitResolver struct {
	users  passwd.Resolver
	groups passwd.Resolver
}

func (s splitResolver) ResolveUser(name string) (uint32, error)  { return s.users.ResolveUser(name) }
func (s splitResolver) ResolveGroup(name string) (uint32, error) { return s.groups.ResolveGroup(name) }

// newResolver reads each database from its file when one is given and from
// the system database otherwise.
func newResolver(passwdFile, groupFile string) splitResolver {
	r := splitResolver{users: passwd.System{}, groups: passwd.System{}}
	if passwdFile != "" {
		r.users = passwd.Files{PasswdPath: passwdFile}
	}
	if groupFile != "" {
		r.groups = passwd.Files{GroupPath: groupFile}
	}
	return r
}

// run resolves whichever of userName and groupName are non-empty and prints
// the results to w.
func run(w io.Writer, userName, groupName string) error {
	if userName != "" {
		uid, err := passwd.ParseUID(userName)
		if err != nil {
			return fmt.Errorf("cannot resolve user: %w", err)
		}
		klog.V(2).Infof("user %q is uid=%d", userName, uid)
		if _, err := fmt.Fprintf(w, "uid=%d\n", uid); err != nil {
			return err
		}
	}
	if groupName != "" {
		gid, err := passwd.ParseGID(groupName)
		if err != nil {
			return fmt.Errorf("cannot resolve group: %w", err)
		}
		klog.V(2).Infof("group %q is gid=%d", groupName, gid)
		if _, err := fmt.Fprintf(w, "gid=%d\n", gid); err != nil {
			return err
		}
	}
	return nil
}
