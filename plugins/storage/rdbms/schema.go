// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package rdbms

// schemaVersion must be bumped together with any change to schema.
const schemaVersion = 1

var schema = []string{
	`create table if not exists schema_version (
		version bigint unsigned not null primary key
	)`,
	`insert ignore into schema_version (version) values (1)`,
	`create table if not exists triggers (
		trigger_id bigint unsigned not null auto_increment primary key,
		pr_id varchar(64) not null,
		ts varchar(32) not null,
		os_version varchar(64) not null,
		require_test boolean not null,
		status_code int not null,
		outcome varchar(16) not null,
		log mediumtext,
		record_time timestamp(3) not null,
		index pr_id_idx (pr_id)
	)`,
}
